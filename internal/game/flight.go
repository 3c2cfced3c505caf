package game

import "github.com/vovakirdan/tui-flappy/internal/geom"

// Flyer is the single player-controlled entity. It is created once at the
// world origin and reset in place on death, never destroyed. Rotation is
// derived from velocity each frame and exists for rendering only.
type Flyer struct {
	Pos      geom.Vec2
	Velocity float64 // Vertical velocity, world units per second
	Rotation float64 // Display rotation in degrees, clamped to [-90, 90]
}

// Simulation owns the flyer's kinematic state and the death/reset policy.
// There is no persistent game-over state: a death collapses back into
// flying within the same frame.
type Simulation struct {
	flyer Flyer
}

// Flyer returns a copy of the flyer's current state.
func (s *Simulation) Flyer() Flyer {
	return s.flyer
}

// Step advances the flyer by dt seconds and evaluates death against the
// field and the screen bound. An impulse sets velocity to FlapForce
// outright, so repeated impulses do not stack. Returns whether the flyer
// died (and the world was reset) this frame.
//
// The death checks reproduce the original rules exactly, in order:
//
//  1. y < screenHeight/2 — the fall-out check compares against the upper
//     half-height bound, so it fires for any flyer below the view top,
//     including at the origin.
//  2. Bounding-box overlap with any obstacle on both axes at once. This is
//     a coarse box test, not a gap-clearance test: grazing a gap edge is
//     not detected unless the box overlaps on both axes.
//
// On death the flyer zeroes in place at the origin and the entire field
// respawns through ResetAll. Non-finite or negative dt is a no-op frame.
func (s *Simulation) Step(dt float64, impulse bool, field *Field, screenWidth, screenHeight float64) bool {
	if !geom.IsFinite(dt) || dt < 0 {
		return false
	}

	if impulse {
		s.flyer.Velocity = FlapForce
	}

	s.flyer.Velocity -= Gravity * dt
	s.flyer.Pos.Y += s.flyer.Velocity * dt
	s.flyer.Rotation = geom.Clamp(s.flyer.Velocity/VelocityToRotationRatio, -90, 90)

	dead := false
	if s.flyer.Pos.Y < screenHeight/2 {
		dead = true
	} else {
		for _, o := range field.Obstacles() {
			if geom.Abs(o.Pos.Y-s.flyer.Pos.Y) < o.HalfHeight() &&
				geom.Abs(o.Pos.X-s.flyer.Pos.X) < o.HalfWidth() {
				dead = true
				break
			}
		}
	}

	if dead {
		s.flyer = Flyer{}
		field.ResetAll(screenWidth)
	}
	return dead
}
