package glapi

// Target selects which framebuffer binding point an operation works on.
type Target int

const (
	ReadFramebuffer Target = iota
	DrawFramebuffer
)

func (t Target) String() string {
	switch t {
	case ReadFramebuffer:
		return "read"
	case DrawFramebuffer:
		return "draw"
	}
	return "unknown"
}

// GL is the subset of the OpenGL API the built-in uniforms need.
// Every call assumes the owning context is current on the calling thread.
type GL interface {
	// GetUniformLocation returns -1 when the program does not declare name.
	GetUniformLocation(program uint32, name string) int32

	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	// Uniform1iv uploads len(v) ints.
	Uniform1iv(location int32, v []int32)
	// Uniform3fv uploads len(v)/3 vec3 values.
	Uniform3fv(location int32, v []float32)
	// Matrices are column-major and are never transposed on upload.
	UniformMatrix3fv(location int32, m [9]float32)
	UniformMatrix4fv(location int32, m [16]float32)

	GenTexture() uint32
	DeleteTexture(texture uint32)
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	// TexImage2D allocates RGBA8 storage for the bound 2D texture.
	TexImage2D(width, height int32)
	TexParameterNearest()

	GenFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(target Target, fbo uint32)
	FramebufferBinding(target Target) uint32
	// FramebufferTexture attaches texture as color attachment 0 of the framebuffer bound to target.
	FramebufferTexture(target Target, texture uint32)
	// BlitFramebuffer copies the color buffer from the read to the draw framebuffer.
	BlitFramebuffer(width, height int32)
}
