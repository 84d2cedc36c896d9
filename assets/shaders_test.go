package assets

import (
	"errors"
	"sync"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func stubCompile(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := compileShader
	compileShader = func(src []byte) (*ebiten.Shader, error) {
		calls++
		if len(src) == 0 {
			t.Error("compiled an empty shader source")
		}
		return nil, err
	}
	shaderOnce = sync.Once{}
	shaderErr = nil
	t.Cleanup(func() {
		compileShader = orig
		shaderOnce = sync.Once{}
		shaderErr = nil
	})
	return &calls
}

func TestLoadShadersCompilesOnce(t *testing.T) {
	calls := stubCompile(t, nil)

	for i := 0; i < 3; i++ {
		if err := LoadShaders(); err != nil {
			t.Fatalf("LoadShaders: %v", err)
		}
	}
	if *calls != 1 {
		t.Errorf("compiled %d times, want 1", *calls)
	}
}

func TestLoadShadersKeepsFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := stubCompile(t, boom)

	for i := 0; i < 2; i++ {
		if err := LoadShaders(); !errors.Is(err, boom) {
			t.Errorf("call %d: err = %v, want %v", i, err, boom)
		}
	}
	if *calls != 1 {
		t.Errorf("compiled %d times, want 1", *calls)
	}
}
