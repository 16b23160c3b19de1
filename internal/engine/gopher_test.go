package engine

import (
	"testing"

	"GopherBuiltins/internal/builtin"
	"GopherBuiltins/internal/config"
)

func TestNewGopherDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.WindowWidth, cfg.WindowHeight = 640, 480

	gopher := NewGopher(cfg, builtin.NewLibrary(), "")

	if gopher.Width != 640 || gopher.Height != 480 {
		t.Errorf("Expected 640x480, got %dx%d", gopher.Width, gopher.Height)
	}
	if gopher.Camera == nil {
		t.Fatal("Camera should be created")
	}
	if len(gopher.Lights) == 0 {
		t.Error("Preview scene should have lights")
	}
	if gopher.shader.IsCompiled() {
		t.Error("Shader must not compile before a context exists")
	}
}

func TestNewGopherSharesLibrary(t *testing.T) {
	lib := builtin.NewLibrary()
	a := NewGopher(config.Default(), lib, "")
	b := NewGopher(config.Default(), lib, "")

	if a.library.Catalogue() != b.library.Catalogue() {
		t.Error("Hosts sharing a library should share one catalogue")
	}
}
