package builtin

import "github.com/go-gl/mathgl/mgl32"

type fakeState struct {
	worldToClip   mgl32.Mat4
	worldToCamera mgl32.Mat4
	cameraToClip  mgl32.Mat4
	width, height int32
	camera        mgl32.Vec3
	capability    LightCapability
	lights        []Light
	lightQueries  int
}

func newFakeState() *fakeState {
	return &fakeState{
		worldToClip:   mgl32.Ident4(),
		worldToCamera: mgl32.Ident4(),
		cameraToClip:  mgl32.Ident4(),
		width:         800,
		height:        600,
		capability:    LightsSupported,
	}
}

func (s *fakeState) WorldToClip() mgl32.Mat4 { return s.worldToClip }
func (s *fakeState) WorldToCamera() mgl32.Mat4 { return s.worldToCamera }
func (s *fakeState) CameraToClip() mgl32.Mat4 { return s.cameraToClip }
func (s *fakeState) ViewportSize() (int32, int32) { return s.width, s.height }
func (s *fakeState) CameraLocation() mgl32.Vec3 { return s.camera }
func (s *fakeState) LightCapability() LightCapability { return s.capability }
func (s *fakeState) Lights() []Light {
	s.lightQueries++
	return s.lights
}

func makeLights(n int) []Light {
	out := make([]Light, n)
	for i := range out {
		f := float32(i + 1)
		out[i] = Light{
			Position:  mgl32.Vec3{f, 10 * f, 100 * f},
			Direction: mgl32.Vec3{-f, -2 * f, -3 * f},
		}
		if i%2 == 1 {
			out[i].CoordinateSystem = Camera
		}
	}
	return out
}
