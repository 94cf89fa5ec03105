package game

import (
	"context"
	"image/color"

	"snek/game/types"
)

// Input reports which direction keys are held this frame
type Input interface {
	IsHeld(dir types.Direction) bool
}

// Display reports the live screen size. It may change between calls.
type Display interface {
	ScreenSize() types.Bounds
}

// Canvas is the set of drawing primitives the game needs
type Canvas interface {
	Clear(c color.RGBA)
	Circle(center types.Point, radius float64, c color.RGBA)
	Text(s string, at types.Point, size float64, c color.RGBA)
	Texture(id types.TextureID, at types.Point, size float64)
}

// Scheduler yields until the next frame. It returns false once the host
// is gone and the loop should stop.
type Scheduler interface {
	NextFrame() bool
}

// Host bundles the collaborators a single Tick talks to
type Host struct {
	Input   Input
	Display Display
	Canvas  Canvas
}

// StaticDisplay is a Display with a fixed size
type StaticDisplay types.Bounds

func (d StaticDisplay) ScreenSize() types.Bounds {
	return types.Bounds(d)
}

// Discard is a Canvas that draws nothing
var Discard Canvas = discard{}

type discard struct{}

func (discard) Clear(color.RGBA) {}
func (discard) Circle(types.Point, float64, color.RGBA) {}
func (discard) Text(string, types.Point, float64, color.RGBA) {}
func (discard) Texture(types.TextureID, types.Point, float64) {}

// Run ticks g once per frame until sched stops or ctx is cancelled.
// observe, when not nil, sees every outcome. It returns the number of
// frames run.
func Run(ctx context.Context, g *Game, host Host, sched Scheduler, observe func(Outcome)) uint64 {
	var frames uint64
	for sched.NextFrame() {
		if ctx.Err() != nil {
			break
		}
		out := g.Tick(host)
		frames++
		if observe != nil {
			observe(out)
		}
	}
	return frames
}

// FrameLimit is a Scheduler for headless runs. It allows Limit frames,
// or runs forever when Limit is 0.
type FrameLimit struct {
	Limit uint64
	seen  uint64
}

func (f *FrameLimit) NextFrame() bool {
	if f.Limit > 0 && f.seen >= f.Limit {
		return false
	}
	f.seen++
	return true
}
