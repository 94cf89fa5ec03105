// Package assets embeds the fruit textures.
package assets

import "embed"

//go:embed textures/*.png
var Textures embed.FS

// Fruits lists the fruit images in TextureID order
var Fruits = []string{
	"textures/apple.png",
	"textures/orange.png",
	"textures/strawberry.png",
}
