package ui

import (
	"image/color"

	"snek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the game's primitives with raylib. It must only be
// used between BeginDrawing and EndDrawing, which Window takes care of.
type Renderer struct {
	atlas *Atlas
}

func NewRenderer(atlas *Atlas) *Renderer {
	return &Renderer{atlas: atlas}
}

func (r *Renderer) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (r *Renderer) Circle(center types.Point, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(center), float32(radius), c)
}

func (r *Renderer) Text(s string, at types.Point, size float64, c color.RGBA) {
	rl.DrawText(s, int32(at.X), int32(at.Y), int32(size), c)
}

// Texture draws the whole image scaled into a size x size square
func (r *Renderer) Texture(id types.TextureID, at types.Point, size float64) {
	tex, ok := r.atlas.Get(id)
	if !ok {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(at.X), float32(at.Y), float32(size), float32(size))
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Keyboard reports the arrow keys
type Keyboard struct{}

var arrowKeys = map[types.Direction]int32{
	types.Up:    rl.KeyUp,
	types.Down:  rl.KeyDown,
	types.Left:  rl.KeyLeft,
	types.Right: rl.KeyRight,
}

func (Keyboard) IsHeld(dir types.Direction) bool {
	key, ok := arrowKeys[dir]
	return ok && rl.IsKeyDown(key)
}

func vec(p types.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
