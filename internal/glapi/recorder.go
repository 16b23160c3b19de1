package glapi

import (
	"fmt"
	"strings"
)

// Call is one recorded GL call.
type Call struct {
	Op       string
	Location int32
	Ints     []int32
	Floats   []float32
}

func (c Call) String() string {
	return fmt.Sprintf("%s(loc=%d ints=%v floats=%v)", c.Op, c.Location, c.Ints, c.Floats)
}

// Recorder is a GL without a driver behind it. It keeps just enough state
// (declared uniforms, framebuffer bindings, live objects) to let callers
// verify what would have reached the driver.
type Recorder struct {
	Calls   []Call
	Lookups []string

	uniforms     map[uint32]map[string]int32
	bindings     map[Target]uint32
	textures     map[uint32]bool
	framebuffers map[uint32]bool
	nextName     uint32
	boundTexture uint32
}

var _ GL = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		uniforms:     make(map[uint32]map[string]int32),
		bindings:     make(map[Target]uint32),
		textures:     make(map[uint32]bool),
		framebuffers: make(map[uint32]bool),
		nextName:     1,
	}
}

// Declare makes program report a location for each name, in argument order.
func (r *Recorder) Declare(program uint32, names ...string) {
	locs, ok := r.uniforms[program]
	if !ok {
		locs = make(map[string]int32)
		r.uniforms[program] = locs
	}
	for _, name := range names {
		if _, exists := locs[name]; !exists {
			locs[name] = int32(len(locs))
		}
	}
}

// Location returns the location Declare assigned, or -1.
func (r *Recorder) Location(program uint32, name string) int32 {
	if loc, ok := r.uniforms[program][name]; ok {
		return loc
	}
	return -1
}

// SetBinding simulates a host that already has a framebuffer bound.
func (r *Recorder) SetBinding(target Target, fbo uint32) {
	r.bindings[target] = fbo
}

// Reset forgets recorded calls and lookups but keeps GL state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Lookups = nil
}

// UniformCalls returns only the uniform-set calls.
func (r *Recorder) UniformCalls() []Call {
	var out []Call
	for _, c := range r.Calls {
		if strings.HasPrefix(c.Op, "Uniform") {
			out = append(out, c)
		}
	}
	return out
}

// CallsTo returns the recorded calls with the given op name.
func (r *Recorder) CallsTo(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// LiveTextures reports textures generated and not yet deleted.
func (r *Recorder) LiveTextures() int { return len(r.textures) }

// LiveFramebuffers reports framebuffers generated and not yet deleted.
func (r *Recorder) LiveFramebuffers() int { return len(r.framebuffers) }

// BoundTexture reports the texture bound to the 2D target.
func (r *Recorder) BoundTexture() uint32 { return r.boundTexture }

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.Lookups = append(r.Lookups, name)
	return r.Location(program, name)
}

func (r *Recorder) Uniform1i(location int32, v int32) {
	r.record(Call{Op: "Uniform1i", Location: location, Ints: []int32{v}})
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.record(Call{Op: "Uniform1f", Location: location, Floats: []float32{v}})
}

func (r *Recorder) Uniform2f(location int32, x, y float32) {
	r.record(Call{Op: "Uniform2f", Location: location, Floats: []float32{x, y}})
}

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.record(Call{Op: "Uniform3f", Location: location, Floats: []float32{x, y, z}})
}

func (r *Recorder) Uniform1iv(location int32, v []int32) {
	r.record(Call{Op: "Uniform1iv", Location: location, Ints: append([]int32(nil), v...)})
}

func (r *Recorder) Uniform3fv(location int32, v []float32) {
	r.record(Call{Op: "Uniform3fv", Location: location, Floats: append([]float32(nil), v...)})
}

func (r *Recorder) UniformMatrix3fv(location int32, m [9]float32) {
	r.record(Call{Op: "UniformMatrix3fv", Location: location, Floats: m[:]})
}

func (r *Recorder) UniformMatrix4fv(location int32, m [16]float32) {
	r.record(Call{Op: "UniformMatrix4fv", Location: location, Floats: m[:]})
}

func (r *Recorder) newName() uint32 {
	n := r.nextName
	r.nextName++
	return n
}

func (r *Recorder) GenTexture() uint32 {
	tex := r.newName()
	r.textures[tex] = true
	r.record(Call{Op: "GenTexture", Ints: []int32{int32(tex)}})
	return tex
}

func (r *Recorder) DeleteTexture(texture uint32) {
	delete(r.textures, texture)
	if r.boundTexture == texture {
		r.boundTexture = 0
	}
	r.record(Call{Op: "DeleteTexture", Ints: []int32{int32(texture)}})
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record(Call{Op: "ActiveTexture", Ints: []int32{int32(unit)}})
}

func (r *Recorder) BindTexture(texture uint32) {
	r.boundTexture = texture
	r.record(Call{Op: "BindTexture", Ints: []int32{int32(texture)}})
}

func (r *Recorder) TexImage2D(width, height int32) {
	r.record(Call{Op: "TexImage2D", Ints: []int32{width, height}})
}

func (r *Recorder) TexParameterNearest() {
	r.record(Call{Op: "TexParameterNearest"})
}

func (r *Recorder) GenFramebuffer() uint32 {
	fbo := r.newName()
	r.framebuffers[fbo] = true
	r.record(Call{Op: "GenFramebuffer", Ints: []int32{int32(fbo)}})
	return fbo
}

func (r *Recorder) DeleteFramebuffer(fbo uint32) {
	delete(r.framebuffers, fbo)
	for t, bound := range r.bindings {
		if bound == fbo {
			r.bindings[t] = 0
		}
	}
	r.record(Call{Op: "DeleteFramebuffer", Ints: []int32{int32(fbo)}})
}

func (r *Recorder) BindFramebuffer(target Target, fbo uint32) {
	r.bindings[target] = fbo
	r.record(Call{Op: "BindFramebuffer", Ints: []int32{int32(target), int32(fbo)}})
}

func (r *Recorder) FramebufferBinding(target Target) uint32 {
	return r.bindings[target]
}

func (r *Recorder) FramebufferTexture(target Target, texture uint32) {
	r.record(Call{Op: "FramebufferTexture", Ints: []int32{int32(target), int32(texture)}})
}

// BlitFramebuffer records the source and destination framebuffers in Ints
// after the blit size.
func (r *Recorder) BlitFramebuffer(width, height int32) {
	r.record(Call{Op: "BlitFramebuffer", Ints: []int32{
		width, height,
		int32(r.bindings[ReadFramebuffer]), int32(r.bindings[DrawFramebuffer]),
	}})
}
