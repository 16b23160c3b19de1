package builtin

import (
	"GopherBuiltins/internal/glapi"
	"GopherBuiltins/internal/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Dispatcher fills the built-in uniforms of whatever program is about to
// draw. It owns GL objects and must only be used from the thread that has
// its context current.
type Dispatcher struct {
	gl       glapi.GL
	cat      *Catalogue
	log      *zap.Logger
	disabled [numKinds]bool
	cache    *glapi.UniformCache
	capture  frameCapture
}

type DispatcherOption func(*Dispatcher)

func WithLogger(l *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithDisabled stops the dispatcher from binding the given built-ins.
func WithDisabled(kinds ...Kind) DispatcherOption {
	return func(d *Dispatcher) {
		for _, k := range kinds {
			if k.valid() {
				d.disabled[k] = true
			}
		}
	}
}

// WithLocationCache remembers uniform locations per program. Call Forget
// when a program is relinked or deleted.
func WithLocationCache() DispatcherOption {
	return func(d *Dispatcher) {
		d.cache = glapi.NewUniformCache(d.gl)
	}
}

func NewDispatcher(gl glapi.GL, cat *Catalogue, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		gl:  gl,
		cat: cat,
		log: logger.Log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Apply binds every built-in that program declares, in catalogue order.
// Built-ins the program does not declare are skipped.
func (d *Dispatcher) Apply(program uint32, state State) {
	f := frame{d: d, state: state}
	debug := d.log.Core().Enabled(zapcore.DebugLevel)
	var bound []string

	for _, p := range d.cat.producers {
		if d.disabled[p.kind] {
			continue
		}
		loc := d.location(program, p.BaseName())
		if loc < 0 {
			continue
		}
		p.apply(&f, loc)
		if debug {
			bound = append(bound, p.Name())
		}
	}

	if debug && len(bound) > 0 {
		d.log.Debug("bound built-in uniforms",
			zap.Uint32("program", program),
			zap.Strings("builtins", bound))
	}
}

func (d *Dispatcher) location(program uint32, name string) int32 {
	if d.cache != nil {
		return d.cache.GetLocation(program, name)
	}
	return d.gl.GetUniformLocation(program, name)
}

// Forget drops cached locations for program.
func (d *Dispatcher) Forget(program uint32) {
	if d.cache != nil {
		d.cache.Forget(program)
	}
}

// Close releases the framebuffer capture texture and framebuffer. The
// dispatcher stays usable and recreates them on demand.
func (d *Dispatcher) Close() {
	d.capture.release(d.gl)
	if d.cache != nil {
		d.cache.Clear()
	}
}
