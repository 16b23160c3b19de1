package builtin

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// frame is what a producer sees while one Apply call runs.
type frame struct {
	d     *Dispatcher
	state State
}

func (f *frame) lights() []Light {
	return bounded(f.d.cat.lights.Lights(f.state))
}

type applyFunc func(f *frame, location int32)

// Producer pairs a built-in with the code that fills it. Producers are
// immutable once the catalogue is built.
type Producer struct {
	kind  Kind
	apply applyFunc
}

func (p Producer) Kind() Kind { return p.kind }
func (p Producer) Name() string { return p.kind.Name() }
func (p Producer) BaseName() string { return p.kind.BaseName() }
func (p Producer) Capacity() int { return p.kind.Capacity() }

var producers = [numKinds]applyFunc{
	WorldToClip: func(f *frame, loc int32) {
		f.d.gl.UniformMatrix4fv(loc, f.state.WorldToClip())
	},
	ViewportSize: func(f *frame, loc int32) {
		w, h := f.state.ViewportSize()
		f.d.gl.Uniform2f(loc, float32(w), float32(h))
	},
	WorldToCamera: func(f *frame, loc int32) {
		f.d.gl.UniformMatrix4fv(loc, f.state.WorldToCamera())
	},
	WorldToCameraNormal: func(f *frame, loc int32) {
		n, ok := NormalMatrix(f.state.WorldToCamera())
		if !ok {
			f.d.log.Debug("world to camera transform is singular, using identity normal matrix")
		}
		f.d.gl.UniformMatrix3fv(loc, n)
	},
	CameraToClip: func(f *frame, loc int32) {
		f.d.gl.UniformMatrix4fv(loc, f.state.CameraToClip())
	},
	Time: func(f *frame, loc int32) {
		f.d.gl.Uniform1f(loc, float32(f.d.cat.Elapsed().Seconds()))
	},
	CameraLocation: func(f *frame, loc int32) {
		p := f.state.CameraLocation()
		f.d.gl.Uniform3f(loc, p.X(), p.Y(), p.Z())
	},
	LightCount: func(f *frame, loc int32) {
		f.d.gl.Uniform1i(loc, int32(len(f.lights())))
	},
	LightPosition: func(f *frame, loc int32) {
		f.d.gl.Uniform3fv(loc, packVec3(f.lights(), func(l Light) mgl32.Vec3 { return l.Position }))
	},
	LightDirection: func(f *frame, loc int32) {
		f.d.gl.Uniform3fv(loc, packVec3(f.lights(), func(l Light) mgl32.Vec3 { return l.Direction }))
	},
	LightInCameraSpace: func(f *frame, loc int32) {
		v := make([]int32, MaxLights)
		for i, l := range f.lights() {
			if l.InCameraSpace() {
				v[i] = 1
			}
		}
		f.d.gl.Uniform1iv(loc, v)
	},
	FrameBufferColor: func(f *frame, loc int32) {
		w, h := f.state.ViewportSize()
		tex, ok := f.d.capture.grab(f.d.gl, w, h)
		if !ok {
			f.d.log.Debug("skipping framebuffer capture for empty viewport",
				zap.Int32("width", w), zap.Int32("height", h))
			return
		}
		f.d.gl.ActiveTexture(0)
		f.d.gl.BindTexture(tex)
		f.d.gl.Uniform1i(loc, 0)
	},
}

// packVec3 lays out one vec3 per light slot; unused slots stay zero.
func packVec3(lights []Light, pick func(Light) mgl32.Vec3) []float32 {
	v := make([]float32, 3*MaxLights)
	for i, l := range lights {
		p := pick(l)
		copy(v[i*3:i*3+3], p[:])
	}
	return v
}
