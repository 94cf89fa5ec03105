package ui

import (
	"snek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window owns the raylib window and paces the game loop. Each NextFrame
// ends the previous frame, which waits for the target frame rate, and
// begins the next one.
type Window struct {
	drawing bool
}

func OpenWindow(width, height int32, title string, fps int32) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(fps)
	return &Window{}
}

func (w *Window) NextFrame() bool {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	if rl.WindowShouldClose() {
		return false
	}
	rl.BeginDrawing()
	w.drawing = true
	return true
}

// ScreenSize returns the live window size
func (w *Window) ScreenSize() types.Bounds {
	return types.Bounds{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
}

func (w *Window) Close() {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
}
