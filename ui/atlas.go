package ui

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"snek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Atlas is the immutable table of loaded textures. Fruits refer to its
// entries by TextureID. Needs an open window.
type Atlas struct {
	textures []rl.Texture2D
}

// LoadAtlas decodes and uploads every named image from fsys, in order.
// Any failure unloads what was already uploaded.
func LoadAtlas(fsys fs.FS, names []string) (*Atlas, error) {
	a := &Atlas{textures: make([]rl.Texture2D, 0, len(names))}
	for _, name := range names {
		tex, err := loadTexture(fsys, name)
		if err != nil {
			a.Unload()
			return nil, err
		}
		a.textures = append(a.textures, tex)
		rl.TraceLog(rl.LogInfo, "SNEK: loaded %s (%dx%d)", name, tex.Width, tex.Height)
	}
	if len(a.textures) == 0 {
		return nil, fmt.Errorf("no textures to load")
	}
	return a, nil
}

func loadTexture(fsys fs.FS, name string) (rl.Texture2D, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return rl.Texture2D{}, fmt.Errorf("failed to read texture %s: %w", name, err)
	}

	ext := strings.ToLower(path.Ext(name))
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || !rl.IsImageReady(img) {
		return rl.Texture2D{}, fmt.Errorf("failed to decode texture %s", name)
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if !rl.IsTextureReady(tex) {
		return rl.Texture2D{}, fmt.Errorf("failed to upload texture %s", name)
	}
	return tex, nil
}

func (a *Atlas) Len() int {
	return len(a.textures)
}

func (a *Atlas) Get(id types.TextureID) (rl.Texture2D, bool) {
	if id < 0 || int(id) >= len(a.textures) {
		return rl.Texture2D{}, false
	}
	return a.textures[id], true
}

func (a *Atlas) Unload() {
	for _, tex := range a.textures {
		rl.UnloadTexture(tex)
	}
	a.textures = nil
}
