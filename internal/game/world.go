package game

import "fmt"

// World composes the simulation, the obstacle field, and the logical view
// dimensions into the single object the host loop drives. The view is
// fixed at construction; terminal resizes change the host's projection,
// never the simulation.
type World struct {
	viewW, viewH float64
	sim          Simulation
	field        *Field
	resets       int
}

// NewWorld creates a world with the given logical view dimensions and
// offset source, and spawns the initial obstacle field. Dimensions must be
// positive and finite.
func NewWorld(viewW, viewH float64, offsets OffsetSource) (*World, error) {
	if !(viewW > 0 && viewH > 0) {
		return nil, fmt.Errorf("view dimensions must be positive, got %gx%g", viewW, viewH)
	}

	w := &World{
		viewW: viewW,
		viewH: viewH,
		field: NewField(offsets),
	}
	w.field.SpawnInitial(viewW)
	return w, nil
}

// Step advances the world by dt seconds. Obstacles scroll and recycle
// first, then the flyer steps and collides against the post-advance
// positions. Returns whether the flyer died this frame.
func (w *World) Step(dt float64, impulse bool) bool {
	w.field.Advance(dt, w.viewW)
	died := w.sim.Step(dt, impulse, w.field, w.viewW, w.viewH)
	if died {
		w.resets++
	}
	return died
}

// Flyer returns a copy of the flyer's current state.
func (w *World) Flyer() Flyer {
	return w.sim.Flyer()
}

// Obstacles returns a read-only view of the obstacle pool.
func (w *World) Obstacles() []Obstacle {
	return w.field.Obstacles()
}

// ViewWidth returns the logical view width in world units.
func (w *World) ViewWidth() float64 {
	return w.viewW
}

// ViewHeight returns the logical view height in world units.
func (w *World) ViewHeight() float64 {
	return w.viewH
}

// Resets returns how many times the flyer has died since construction.
func (w *World) Resets() int {
	return w.resets
}
