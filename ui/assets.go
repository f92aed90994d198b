package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrAssetLoad wraps every image or font that could not be loaded.
var ErrAssetLoad = errors.New("asset load failed")

// Asset file names looked up inside the asset directory.
const (
	BackgroundFile = "grassland.jpg"
	SegmentFile    = "snake.png"
	AppleFile      = "apple.png"
	FontFile       = "font.ttf"
)

// Assets holds the GPU resources of the window. Without an asset
// directory everything is drawn with primitives and the default font.
type Assets struct {
	Background rl.Texture2D
	Segment    rl.Texture2D
	Apple      rl.Texture2D
	Font       rl.Font

	textures  bool
	ownedFont bool
}

// LoadAssets loads the textures from dir scaled to the board, and the font
// if dir has one. An empty dir selects primitives. The window must be open.
func LoadAssets(dir string, width, height, cell int32) (*Assets, error) {
	a := &Assets{Font: rl.GetFontDefault()}
	if dir == "" {
		return a, nil
	}

	var err error
	if a.Background, err = loadTexture(filepath.Join(dir, BackgroundFile), width, height); err != nil {
		return nil, err
	}
	if a.Segment, err = loadTexture(filepath.Join(dir, SegmentFile), cell, cell); err != nil {
		rl.UnloadTexture(a.Background)
		return nil, err
	}
	if a.Apple, err = loadTexture(filepath.Join(dir, AppleFile), cell, cell); err != nil {
		rl.UnloadTexture(a.Background)
		rl.UnloadTexture(a.Segment)
		return nil, err
	}
	a.textures = true

	fontPath := filepath.Join(dir, FontFile)
	if _, err := os.Stat(fontPath); err == nil {
		font := rl.LoadFont(fontPath)
		if font.Texture.ID == 0 {
			a.Unload()
			return nil, fmt.Errorf("%w: font %s", ErrAssetLoad, fontPath)
		}
		a.Font = font
		a.ownedFont = true
	} else {
		log.Printf("no %s in %s, using the default font", FontFile, dir)
	}
	return a, nil
}

func loadTexture(path string, width, height int32) (rl.Texture2D, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	img := rl.LoadImage(path)
	if img == nil || img.Data == nil || img.Width == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: cannot decode %s", ErrAssetLoad, path)
	}
	defer rl.UnloadImage(img)

	rl.ImageResize(img, width, height)
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: cannot upload %s", ErrAssetLoad, path)
	}
	return tex, nil
}

// HasTextures reports whether sprites were loaded.
func (a *Assets) HasTextures() bool {
	return a.textures
}

// Unload releases everything LoadAssets acquired.
func (a *Assets) Unload() {
	if a.textures {
		rl.UnloadTexture(a.Background)
		rl.UnloadTexture(a.Segment)
		rl.UnloadTexture(a.Apple)
		a.textures = false
	}
	if a.ownedFont {
		rl.UnloadFont(a.Font)
		a.Font = rl.GetFontDefault()
		a.ownedFont = false
	}
}
