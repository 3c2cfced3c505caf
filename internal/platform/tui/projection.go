package tui

import "github.com/vovakirdan/tui-flappy/internal/geom"

// Logical view dimensions in world units. The simulation always runs at
// this resolution; terminal size only changes how it is projected.
const (
	LogicalWidth  = 512.0
	LogicalHeight = 512.0
)

// Projection maps world coordinates (origin-centered, y up) onto terminal
// cells (top-left origin, y down). Each axis scales independently, so the
// world stretches to fill whatever terminal it gets.
type Projection struct {
	cols, rows   int
	viewW, viewH float64
}

// NewProjection creates a projection from a world view onto a cell grid.
func NewProjection(cols, rows int, viewW, viewH float64) Projection {
	return Projection{cols: cols, rows: rows, viewW: viewW, viewH: viewH}
}

// Cell returns the column and row containing the world point. Points
// outside the view map to cells outside [0,cols)x[0,rows); the screen
// buffer clips those on draw.
func (p Projection) Cell(w geom.Vec2) (col, row int) {
	col = int((w.X + p.viewW/2) / p.viewW * float64(p.cols))
	row = int((p.viewH/2 - w.Y) / p.viewH * float64(p.rows))
	return col, row
}

// CellBox returns the inclusive cell bounds covering a world-space box
// given by its center and half extents.
func (p Projection) CellBox(center geom.Vec2, halfW, halfH float64) (x0, y0, x1, y1 int) {
	x0, y0 = p.Cell(geom.Vec2{X: center.X - halfW, Y: center.Y + halfH})
	x1, y1 = p.Cell(geom.Vec2{X: center.X + halfW, Y: center.Y - halfH})
	return x0, y0, x1, y1
}
