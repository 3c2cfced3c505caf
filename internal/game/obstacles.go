package game

import "github.com/vovakirdan/tui-flappy/internal/geom"

// Obstacle is one half of a pipe pair. Direction is fixed at creation:
// +1 sits above the gap, -1 below it. The sign also selects the sprite's
// vertical mirroring on the rendering side.
type Obstacle struct {
	Pos       geom.Vec2
	Direction float64
}

// HalfWidth returns the obstacle's horizontal half extent in world units.
func (o Obstacle) HalfWidth() float64 {
	return ObstacleHalfWidth()
}

// HalfHeight returns the obstacle's vertical half extent in world units.
func (o Obstacle) HalfHeight() float64 {
	return ObstacleHalfHeight()
}

// Field owns the fixed pool of obstacles, their scroll, the recycling of
// pairs that leave the visible field, and the full respawn on reset.
// The pool is allocated once; obstacles are never individually destroyed.
type Field struct {
	obstacles [PoolSize]Obstacle
	offsets   OffsetSource
}

// NewField creates an empty field drawing vertical offsets from the given
// source. Call SpawnInitial before the first Advance.
func NewField(offsets OffsetSource) *Field {
	return &Field{offsets: offsets}
}

// SpawnInitial lays out all pairs left to right. Pair i sits at
// x = screenWidth/2 * PixelRatio * i; both members share that x and one
// random offset, placed at ±centeredPipePosition + offset by direction.
//
// The initial spacing (screenWidth/2 * PixelRatio) intentionally differs
// from the recycle step (ObstacleAmount * ObstacleSpacing * PixelRatio);
// the field converges to the recycle spacing as pairs wrap.
func (f *Field) SpawnInitial(screenWidth float64) {
	for i := 0; i < ObstacleAmount; i++ {
		offset := f.offsets.NextOffset()
		x := screenWidth / 2 * PixelRatio * float64(i)

		f.obstacles[2*i] = Obstacle{
			Pos:       geom.Vec2{X: x, Y: centeredPipePosition() + offset},
			Direction: 1,
		}
		f.obstacles[2*i+1] = Obstacle{
			Pos:       geom.Vec2{X: x, Y: -centeredPipePosition() + offset},
			Direction: -1,
		}
	}
}

// Advance scrolls every obstacle left by ObstacleScrollSpeed*dt and
// recycles any obstacle whose right edge has passed the left screen
// boundary: its x jumps forward by one full field width and its y is
// re-placed from its own direction sign and this call's offset.
//
// One offset is drawn per call, shared by every obstacle that recycles
// during it. A pair's two members recycle on the same frame (same x, same
// speed), so they pick up the same offset and stay aligned.
//
// Non-finite or negative dt is a no-op frame.
func (f *Field) Advance(dt, screenWidth float64) {
	if !geom.IsFinite(dt) || dt < 0 {
		return
	}

	offset := f.offsets.NextOffset()
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Pos.X -= ObstacleScrollSpeed * dt

		if o.Pos.X+ObstacleHalfWidth() < -screenWidth/2 {
			o.Pos.X += ObstacleAmount * ObstacleSpacing * PixelRatio
			o.Pos.Y = centeredPipePosition()*o.Direction + offset
		}
	}
}

// ResetAll discards the current layout and respawns the whole field with
// fresh random offsets. Used on death; ordinary play only ever recycles.
func (f *Field) ResetAll(screenWidth float64) {
	f.SpawnInitial(screenWidth)
}

// Obstacles returns a read-only view of the pool for collision checks and
// rendering. Callers must not retain the slice across frames.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles[:]
}
