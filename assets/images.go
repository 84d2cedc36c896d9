package assets

import (
	"sync"

	cfg "github.com/automoto/dashdodge/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// There are no image files. Sprites are solid white squares tinted at draw
// time and the background is painted once on first use.
var (
	spriteCache     = map[[2]int]*ebiten.Image{}
	backgroundImage *ebiten.Image
	backgroundOnce  sync.Once
)

// GetSprite returns the shared white sprite for the given size.
func GetSprite(w, h int) *ebiten.Image {
	key := [2]int{w, h}
	if img, ok := spriteCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.White)
	spriteCache[key] = img
	return img
}

// GetBackground returns the playfield backdrop: a solid fill with a grid.
func GetBackground() *ebiten.Image {
	backgroundOnce.Do(func() {
		w, h := cfg.C.Width, cfg.C.Height
		bg := cfg.Background

		img := ebiten.NewImage(w, h)
		img.Fill(bg.FillColor)
		for _, x := range GridLines(w, bg.GridSpacing) {
			vector.StrokeLine(img, float32(x), 0, float32(x), float32(h), bg.GridWidth, bg.GridColor, false)
		}
		for _, y := range GridLines(h, bg.GridSpacing) {
			vector.StrokeLine(img, 0, float32(y), float32(w), float32(y), bg.GridWidth, bg.GridColor, false)
		}
		backgroundImage = img
	})
	return backgroundImage
}

// GridLines lists the grid line offsets across extent, starting at 0.
func GridLines(extent, spacing int) []int {
	if spacing <= 0 {
		return nil
	}
	lines := make([]int, 0, extent/spacing+1)
	for p := 0; p < extent; p += spacing {
		lines = append(lines, p)
	}
	return lines
}
