package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Styles maps color slots to lipgloss styles built from a theme.
type Styles map[Color]lipgloss.Style

// NewStyles builds the style table for a theme.
func NewStyles(theme config.Theme) Styles {
	return Styles{
		ColorDefault: lipgloss.NewStyle(),
		ColorFlyer:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Flyer)),
		ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Pipe)),
		ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.HUD)),
		ColorFlash:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Flash)).Bold(true),
	}
}

// glyph returns the first rune of a theme string, or the fallback when the
// theme left it empty.
func glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// flyerGlyph picks the glyph for the flyer's current rotation band.
func flyerGlyph(theme config.Theme, rotation float64) rune {
	switch {
	case rotation > 30:
		return glyph(theme.Flyer.Climb, '▲')
	case rotation < -30:
		return glyph(theme.Flyer.Dive, '▼')
	default:
		return glyph(theme.Flyer.Level, '►')
	}
}

// drawWorld renders one frame of the world into the screen buffer.
// flashing colors the flyer with the flash slot (the frame right after a
// death, a host-side effect only).
func drawWorld(dst *Screen, w *game.World, theme config.Theme, proj Projection, flashing bool) {
	dst.Clear()

	for _, o := range w.Obstacles() {
		drawObstacle(dst, theme, proj, o)
	}

	fl := w.Flyer()
	col, row := proj.Cell(fl.Pos)
	c := ColorFlyer
	if flashing {
		c = ColorFlash
	}
	dst.Set(col, row, flyerGlyph(theme, fl.Rotation), c)
}

// drawObstacle renders one obstacle box with its gap-side cap. The
// direction sign selects which edge faces the gap, mirroring the sprite
// flip of a windowed renderer.
func drawObstacle(dst *Screen, theme config.Theme, proj Projection, o game.Obstacle) {
	x0, y0, x1, y1 := proj.CellBox(o.Pos, o.HalfWidth(), o.HalfHeight())

	body := glyph(theme.Pipe.Body, '█')
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.Set(x, y, body, ColorPipe)
		}
	}

	// Direction +1 sits above the gap, so its bottom row faces it.
	if o.Direction > 0 {
		capRune := glyph(theme.Pipe.CapTop, '▄')
		for x := x0; x <= x1; x++ {
			dst.Set(x, y1, capRune, ColorPipe)
		}
	} else {
		capRune := glyph(theme.Pipe.CapBottom, '▀')
		for x := x0; x <= x1; x++ {
			dst.Set(x, y0, capRune, ColorPipe)
		}
	}
}

// drawHUD renders the status line across the top row.
func drawHUD(dst *Screen, w *game.World, elapsed float64, flashing bool) {
	hud := fmt.Sprintf(" t=%6.1fs  resets=%d  vel=%+7.0f ", elapsed, w.Resets(), w.Flyer().Velocity)
	dst.DrawText(1, 0, hud, ColorHUD)
	if flashing {
		dst.DrawTextCentered(dst.Height()/2, " RESET ", ColorFlash)
	}
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color render as one styled run to keep the
// ANSI escape overhead down.
func RenderScreen(s *Screen, styles Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
