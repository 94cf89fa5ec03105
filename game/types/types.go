package types

import "math"

// Point is a position on the playfield in screen units
type Point struct {
	X, Y float64
}

// Add returns p offset by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Bounds represents the live screen dimensions
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// TextureID indexes the immutable texture table owned by the renderer.
// Several fruits may share the same id.
type TextureID int

// Game constants
const (
	StepSize     = 2.0  // Distance the head moves per tick
	GrowthBatch  = 15   // Segments added at spawn and on every eat
	PickupRadius = 20.0 // Head to fruit distance that counts as eating
	EdgeMargin   = 2.0  // Head closer than this to an edge is dead
	NeckLength   = 18   // Segments below this index never count as self collision
	SelfRadius   = 18.0 // Head to segment distance that counts as self collision

	SpawnPadding   = 16.0 // Fruits never spawn closer than this to an edge
	MilestoneEvery = 5    // A new fruit appears every N points
	MaxFruits      = 9    // Hard cap on fruits in play
)
