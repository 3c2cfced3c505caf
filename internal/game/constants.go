// Package game implements the flappy simulation core: the flyer's
// kinematics, the scrolling obstacle field with pair recycling, and the
// death/reset policy. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
//
// Coordinates are world units with the origin at the view center and y
// growing upward. The flyer never moves horizontally; obstacles scroll
// toward it (a camera-relative convention).
package game

// Physics and layout constants. These are fixed tuning values, not runtime
// configuration: appearance is themeable, physics is not.
const (
	PixelRatio              = 4.0    // Sprite/logical units to world units
	Gravity                 = 2000.0 // Downward acceleration, world units per second squared
	FlapForce               = 500.0  // Upward velocity set (not added) on impulse
	VelocityToRotationRatio = 7.5    // Velocity to display rotation divisor

	ObstacleAmount         = 5     // Number of obstacle pairs in the pool
	ObstacleWidth          = 32.0  // Obstacle sprite width in logical units
	ObstacleHeight         = 144.0 // Obstacle sprite height in logical units
	ObstacleVerticalOffset = 30.0  // Max random vertical shift per pair, logical units
	ObstacleGapSize        = 15.0  // Half the gap between a pair's members, logical units
	ObstacleSpacing        = 60.0  // Horizontal pair spacing in logical units
	ObstacleScrollSpeed    = 150.0 // Scroll speed, world units per second
)

// PoolSize is the fixed number of obstacles alive for the lifetime of the
// process: one above and one below the gap for each pair.
const PoolSize = 2 * ObstacleAmount

// centeredPipePosition returns the vertical distance from a pair's gap
// center to each member's center, in world units.
func centeredPipePosition() float64 {
	return (ObstacleHeight/2 + ObstacleGapSize) * PixelRatio
}

// ObstacleHalfWidth returns an obstacle's horizontal half extent in world units.
func ObstacleHalfWidth() float64 {
	return ObstacleWidth * PixelRatio / 2
}

// ObstacleHalfHeight returns an obstacle's vertical half extent in world units.
func ObstacleHalfHeight() float64 {
	return ObstacleHeight * PixelRatio / 2
}
