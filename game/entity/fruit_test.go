package entity

import (
	"testing"

	"snek/game/types"

	"golang.org/x/exp/rand"
)

func TestRandomPositionStaysInsidePadding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := types.Bounds{Width: 800, Height: 600}

	for i := 0; i < 1000; i++ {
		p := RandomPosition(rng, bounds)
		if p.X < 16 || p.X > 784 || p.Y < 16 || p.Y > 584 {
			t.Fatalf("sample %d out of range: %v", i, p)
		}
	}
}

func TestRandomPositionTinyScreen(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := RandomPosition(rng, types.Bounds{Width: 20, Height: 10})
	if p.X != 10 || p.Y != 5 {
		t.Fatalf("got %v, want the middle of the screen", p)
	}
}

func TestRandomTextureCoversAll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[types.TextureID]bool{}
	for i := 0; i < 300; i++ {
		id := RandomTexture(rng, 3)
		if id < 0 || id > 2 {
			t.Fatalf("texture %d out of range", id)
		}
		seen[id] = true
	}
	if len(seen) != 3 {
		t.Fatalf("only saw textures %v", seen)
	}
}

func TestRespawnKeepsSize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := types.Bounds{Width: 800, Height: 600}
	f := NewFruit(rng, bounds, 3)
	if f.Size != 600.0/16 {
		t.Fatalf("size = %f", f.Size)
	}

	old := f.Pos
	f.Respawn(rng, types.Bounds{Width: 1600, Height: 1200}, 3)
	if f.Pos == old {
		t.Fatalf("respawn did not move the fruit")
	}
	if f.Size != 600.0/16 {
		t.Fatalf("respawn changed size to %f", f.Size)
	}
}
