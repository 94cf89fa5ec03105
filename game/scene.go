package game

import (
	"fmt"
	"image/color"

	"snek/game/types"
)

var (
	grassColor    = color.RGBA{R: 89, G: 178, B: 25, A: 255}
	lightGray     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	darkGray      = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	deathRed      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	snekOrange    = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	segmentRadius = 14.0
	fruitOffset   = 20.0
	hudTextSize   = 20.0
)

// drawWorld draws fruits, then the snek on top, then the HUD
func drawWorld(c Canvas, g *Game) {
	c.Clear(grassColor)

	for _, fruit := range g.GetFruits() {
		at := types.Point{X: fruit.Pos.X - fruitOffset, Y: fruit.Pos.Y - fruitOffset}
		c.Texture(fruit.Texture, at, fruit.Size)
	}

	for _, p := range g.Snek.Body {
		c.Circle(p, segmentRadius, snekOrange)
	}

	c.Text("move the snek with arrow keys", types.Point{X: 20, Y: 20}, hudTextSize, darkGray)
	c.Text(fmt.Sprintf("score: %d", g.Snek.Score), types.Point{X: 20, Y: 40}, hudTextSize, darkGray)
	c.Text(fmt.Sprintf("best: %d", g.GetStateManager().GetHighScore()), types.Point{X: 20, Y: 60}, hudTextSize, darkGray)
}

func drawDeathScreen(c Canvas, bounds types.Bounds) {
	center := bounds.Center()
	c.Clear(lightGray)
	c.Text("you died lmao", types.Point{X: center.X - 300, Y: center.Y}, 100, deathRed)
	c.Text("press the arrow keys to restart", types.Point{X: center.X - 380, Y: center.Y + 50}, 60, deathRed)
}
