package assets

import (
	"embed"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader recolors the white entity sprites
	TintShader *ebiten.Shader

	shaderOnce sync.Once
	shaderErr  error

	// compileShader is swapped out in tests
	compileShader = ebiten.NewShader
)

// LoadShaders compiles all shaders on the first call. Later calls return the
// first result without recompiling.
func LoadShaders() error {
	shaderOnce.Do(func() {
		shaderErr = loadShaders()
	})
	return shaderErr
}

func loadShaders() error {
	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return fmt.Errorf("failed to read tint shader: %w", err)
	}
	TintShader, err = compileShader(tintSrc)
	if err != nil {
		return fmt.Errorf("failed to compile tint shader: %w", err)
	}

	return nil
}

// TintUniforms converts a color into the tint shader's uniform map.
func TintUniforms(c color.RGBA) map[string]any {
	return map[string]any{
		"TintColor": []float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			float32(c.A) / 255,
		},
	}
}
