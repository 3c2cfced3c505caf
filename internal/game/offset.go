package game

import "math/rand"

// OffsetSource produces bounded random vertical offsets for obstacle
// placement. Implementations must be safe to substitute in tests with a
// seeded or scripted source; the simulation never reaches for a global
// generator.
type OffsetSource interface {
	// NextOffset returns a value uniformly distributed in
	// [-ObstacleVerticalOffset, ObstacleVerticalOffset) scaled to world
	// units by PixelRatio.
	NextOffset() float64
}

// uniformOffsetSource draws offsets from a seeded math/rand generator.
type uniformOffsetSource struct {
	rng *rand.Rand
}

// NewOffsetSource creates an offset source seeded for deterministic replay.
func NewOffsetSource(seed int64) OffsetSource {
	return &uniformOffsetSource{rng: rand.New(rand.NewSource(seed))}
}

// NextOffset returns the next random offset in world units.
func (s *uniformOffsetSource) NextOffset() float64 {
	return (s.rng.Float64()*2 - 1) * ObstacleVerticalOffset * PixelRatio
}
