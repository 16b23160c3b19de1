package glapi

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// OpenGL forwards to the go-gl 4.1 core bindings. gl.Init must have been
// called with the context current before any method is used.
type OpenGL struct{}

var _ GL = OpenGL{}

func glTarget(t Target) uint32 {
	if t == ReadFramebuffer {
		return gl.READ_FRAMEBUFFER
	}
	return gl.DRAW_FRAMEBUFFER
}

func (OpenGL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (OpenGL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (OpenGL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (OpenGL) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (OpenGL) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (OpenGL) Uniform1iv(location int32, v []int32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1iv(location, int32(len(v)), &v[0])
}

func (OpenGL) Uniform3fv(location int32, v []float32) {
	if len(v) < 3 {
		return
	}
	gl.Uniform3fv(location, int32(len(v)/3), &v[0])
}

func (OpenGL) UniformMatrix3fv(location int32, m [9]float32) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (OpenGL) UniformMatrix4fv(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (OpenGL) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (OpenGL) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (OpenGL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (OpenGL) BindTexture(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (OpenGL) TexImage2D(width, height int32) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

func (OpenGL) TexParameterNearest() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
}

func (OpenGL) GenFramebuffer() uint32 {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	return fbo
}

func (OpenGL) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

func (OpenGL) BindFramebuffer(target Target, fbo uint32) {
	gl.BindFramebuffer(glTarget(target), fbo)
}

func (OpenGL) FramebufferBinding(target Target) uint32 {
	pname := uint32(gl.DRAW_FRAMEBUFFER_BINDING)
	if target == ReadFramebuffer {
		pname = gl.READ_FRAMEBUFFER_BINDING
	}
	var binding int32
	gl.GetIntegerv(pname, &binding)
	return uint32(binding)
}

func (OpenGL) FramebufferTexture(target Target, texture uint32) {
	gl.FramebufferTexture(glTarget(target), gl.COLOR_ATTACHMENT0, texture, 0)
}

func (OpenGL) BlitFramebuffer(width, height int32) {
	gl.BlitFramebuffer(0, 0, width, height, 0, 0, width, height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
}
