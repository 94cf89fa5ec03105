package entity

import (
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// Fruit is something the snek can eat. Texture is a shared handle, the
// fruit does not own the image behind it.
type Fruit struct {
	Pos     types.Point
	Texture types.TextureID
	Size    float64 // Edge of the drawn quad
}

// RandomPosition samples a point uniformly inside bounds, keeping
// SpawnPadding away from every edge.
func RandomPosition(rng *rand.Rand, bounds types.Bounds) types.Point {
	return types.Point{
		X: uniform(rng, types.SpawnPadding, bounds.Width-types.SpawnPadding),
		Y: uniform(rng, types.SpawnPadding, bounds.Height-types.SpawnPadding),
	}
}

// RandomTexture picks one of textures handles uniformly
func RandomTexture(rng *rand.Rand, textures int) types.TextureID {
	if textures <= 1 {
		return 0
	}
	return types.TextureID(rng.Intn(textures))
}

func NewFruit(rng *rand.Rand, bounds types.Bounds, textures int) *Fruit {
	return &Fruit{
		Pos:     RandomPosition(rng, bounds),
		Texture: RandomTexture(rng, textures),
		Size:    bounds.Height / 16,
	}
}

// Respawn moves the fruit somewhere new and gives it a new look
func (f *Fruit) Respawn(rng *rand.Rand, bounds types.Bounds, textures int) {
	f.Pos = RandomPosition(rng, bounds)
	f.Texture = RandomTexture(rng, textures)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	// A screen smaller than twice the padding collapses to its middle
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}
