package renderer

import (
	"GopherBuiltins/internal/builtin"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is the per-frame view of the renderer handed to the built-in
// uniforms. Matrices are computed once when the snapshot is taken.
type Snapshot struct {
	worldToCamera mgl32.Mat4
	cameraToClip  mgl32.Mat4
	worldToClip   mgl32.Mat4
	location      mgl32.Vec3
	viewport      Viewport
	capability    builtin.LightCapability
	lights        []builtin.Light
}

var _ builtin.State = (*Snapshot)(nil)

// NewSnapshot captures camera, viewport and scene lights for one frame.
func NewSnapshot(camera *Camera, viewport Viewport, lights []*Light) *Snapshot {
	s := newSnapshot(camera, viewport)
	s.capability = builtin.LightsSupported
	s.lights = make([]builtin.Light, 0, len(lights))
	for _, l := range lights {
		if l != nil {
			s.lights = append(s.lights, l.Builtin())
		}
	}
	return s
}

// NewLegacySnapshot is for render paths that cannot report their lights.
func NewLegacySnapshot(camera *Camera, viewport Viewport) *Snapshot {
	s := newSnapshot(camera, viewport)
	s.capability = builtin.LightsUnsupported
	return s
}

func newSnapshot(camera *Camera, viewport Viewport) *Snapshot {
	view := camera.GetViewMatrix()
	proj := camera.GetProjectionMatrix()
	return &Snapshot{
		worldToCamera: view,
		cameraToClip:  proj,
		worldToClip:   proj.Mul4(view),
		location:      camera.Position,
		viewport:      viewport,
	}
}

func (s *Snapshot) WorldToClip() mgl32.Mat4 { return s.worldToClip }
func (s *Snapshot) WorldToCamera() mgl32.Mat4 { return s.worldToCamera }
func (s *Snapshot) CameraToClip() mgl32.Mat4 { return s.cameraToClip }
func (s *Snapshot) CameraLocation() mgl32.Vec3 {
	return s.location
}

func (s *Snapshot) ViewportSize() (int32, int32) {
	return s.viewport.Width, s.viewport.Height
}

func (s *Snapshot) LightCapability() builtin.LightCapability { return s.capability }
func (s *Snapshot) Lights() []builtin.Light { return s.lights }
