package builtin

import "GopherBuiltins/internal/glapi"

// frameCapture owns the texture and framebuffer _frameBufferColor copies
// into. Both are created on first use and reused; the texture storage is
// reallocated only when the viewport size changes.
type frameCapture struct {
	fbo     uint32
	texture uint32
	width   int32
	height  int32
}

// grab copies the color buffer of the bound draw framebuffer into the pooled
// texture and returns it. Read and draw bindings are restored before
// returning.
func (fc *frameCapture) grab(gl glapi.GL, width, height int32) (uint32, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}

	draw := gl.FramebufferBinding(glapi.DrawFramebuffer)
	read := gl.FramebufferBinding(glapi.ReadFramebuffer)
	gl.BindFramebuffer(glapi.ReadFramebuffer, draw)

	if fc.fbo == 0 {
		fc.fbo = gl.GenFramebuffer()
	}
	gl.BindFramebuffer(glapi.DrawFramebuffer, fc.fbo)

	if fc.texture == 0 {
		fc.texture = gl.GenTexture()
		gl.BindTexture(fc.texture)
		gl.TexParameterNearest()
		fc.width, fc.height = 0, 0
	}
	if fc.width != width || fc.height != height {
		gl.BindTexture(fc.texture)
		gl.TexImage2D(width, height)
		gl.FramebufferTexture(glapi.DrawFramebuffer, fc.texture)
		fc.width, fc.height = width, height
	}

	gl.BlitFramebuffer(width, height)

	gl.BindFramebuffer(glapi.ReadFramebuffer, read)
	gl.BindFramebuffer(glapi.DrawFramebuffer, draw)
	return fc.texture, true
}

func (fc *frameCapture) release(gl glapi.GL) {
	if fc.texture != 0 {
		gl.DeleteTexture(fc.texture)
	}
	if fc.fbo != 0 {
		gl.DeleteFramebuffer(fc.fbo)
	}
	*fc = frameCapture{}
}
