package renderer

import (
	"testing"

	"GopherBuiltins/internal/builtin"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSnapshot(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{3, 4, 5}
	lights := []*Light{
		CreateSunlight(mgl32.Vec3{0, -1, 0}),
		nil,
		CreateHeadlight(),
	}

	snap := NewSnapshot(cam, Viewport{Width: 800, Height: 600}, lights)

	if snap.LightCapability() != builtin.LightsSupported {
		t.Fatal("Snapshot with a light list should support light queries")
	}
	got := snap.Lights()
	if len(got) != 2 {
		t.Fatalf("Expected nil lights to be dropped, got %d lights", len(got))
	}
	if got[0].InCameraSpace() || !got[1].InCameraSpace() {
		t.Error("Headlight should be the only camera-relative light")
	}

	w, h := snap.ViewportSize()
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600, got %dx%d", w, h)
	}
	if snap.CameraLocation() != cam.Position {
		t.Errorf("Expected camera location %v, got %v", cam.Position, snap.CameraLocation())
	}
}

func TestSnapshotMatrices(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	snap := NewSnapshot(cam, Viewport{Width: 800, Height: 600}, nil)

	if !snap.WorldToCamera().ApproxEqual(cam.GetViewMatrix()) {
		t.Error("WorldToCamera should be the view matrix")
	}
	if !snap.CameraToClip().ApproxEqual(cam.GetProjectionMatrix()) {
		t.Error("CameraToClip should be the projection matrix")
	}
	if !snap.WorldToClip().ApproxEqual(snap.CameraToClip().Mul4(snap.WorldToCamera())) {
		t.Error("WorldToClip should be camera-to-clip * world-to-camera")
	}
}

func TestLegacySnapshot(t *testing.T) {
	snap := NewLegacySnapshot(NewDefaultCamera(640, 480), Viewport{Width: 640, Height: 480})

	if snap.LightCapability() != builtin.LightsUnsupported {
		t.Error("Legacy snapshot should not support light queries")
	}
}

func TestLightBuiltinStyles(t *testing.T) {
	cases := []struct {
		light *Light
		style builtin.LightStyle
	}{
		{CreateSunlight(mgl32.Vec3{1, -1, 0}), builtin.WorldDirectional},
		{CreateHeadlight(), builtin.CameraDirectional},
		{CreatePointLight(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1}, 1), builtin.WorldPoint},
		{&Light{Mode: "spot", CameraRelative: true}, builtin.CameraSpot},
		{&Light{Mode: "ambient"}, builtin.Ambient},
	}

	for _, c := range cases {
		if got := c.light.Builtin().Style; got != c.style {
			t.Errorf("Mode %q camera=%v: expected style %d, got %d", c.light.Mode, c.light.CameraRelative, c.style, got)
		}
	}
}

func TestCreatePointLightKeepsPosition(t *testing.T) {
	l := CreatePointLight(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 0, 0}, 2).Builtin()

	if l.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Unexpected position %v", l.Position)
	}
	if l.CoordinateSystem != builtin.World {
		t.Error("Point light should be in world space")
	}
}
