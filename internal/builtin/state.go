package builtin

import "github.com/go-gl/mathgl/mgl32"

// LightCapability tells whether a renderer can report its lights. It is
// fixed when the renderer is bound, not probed per draw.
type LightCapability int

const (
	LightsUnsupported LightCapability = iota
	LightsSupported
)

func (c LightCapability) String() string {
	if c == LightsSupported {
		return "supported"
	}
	return "unsupported"
}

// State is the renderer state snapshot for the current draw. Matrices are
// column-major, in the renderer's own convention.
type State interface {
	WorldToClip() mgl32.Mat4
	WorldToCamera() mgl32.Mat4
	CameraToClip() mgl32.Mat4
	ViewportSize() (width, height int32)
	CameraLocation() mgl32.Vec3
	LightCapability() LightCapability
	// Lights is only called when LightCapability reports LightsSupported.
	Lights() []Light
}
