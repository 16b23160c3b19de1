package builtin

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Catalogue is the sorted, read-only set of built-in producers.
type Catalogue struct {
	producers []Producer
	byBase    map[string]int
	lights    *LightShim
	now       func() time.Time
	start     time.Time
}

type Option func(*Catalogue)

// WithClock replaces time.Now, which the _time built-in measures against.
func WithClock(now func() time.Time) Option {
	return func(c *Catalogue) {
		c.now = now
	}
}

// BuildCatalogue registers every built-in and sorts them by declared name.
// The construction time becomes the origin for _time.
func BuildCatalogue(opts ...Option) *Catalogue {
	c := &Catalogue{
		lights: NewLightShim(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.start = c.now()

	c.producers = make([]Producer, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		c.producers = append(c.producers, Producer{kind: k, apply: producers[k]})
	}
	slices.SortFunc(c.producers, func(a, b Producer) int {
		return strings.Compare(a.Name(), b.Name())
	})

	c.byBase = make(map[string]int, len(c.producers))
	for i, p := range c.producers {
		c.byBase[p.BaseName()] = i
	}
	return c
}

// Producers returns the catalogue in name order. Callers must not modify it.
func (c *Catalogue) Producers() []Producer { return c.producers }

func (c *Catalogue) Len() int { return len(c.producers) }

// Lookup finds the producer for a declared name ("_lightPosition[4]") or any
// form a driver reports for it ("_lightPosition", "_lightPosition[0]").
func (c *Catalogue) Lookup(name string) (Producer, bool) {
	i, ok := c.byBase[BaseName(name)]
	if !ok {
		return Producer{}, false
	}
	return c.producers[i], true
}

// Lights resolves the renderer's lights through the catalogue's shim.
func (c *Catalogue) Lights(state State) []Light {
	return c.lights.Lights(state)
}

// Elapsed is the time since the catalogue was built. Never negative.
func (c *Catalogue) Elapsed() time.Duration {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}

// Library hands out one lazily built Catalogue. The host creates it at
// startup and shares it with every dispatcher.
type Library struct {
	once sync.Once
	opts []Option
	cat  *Catalogue
}

func NewLibrary(opts ...Option) *Library {
	return &Library{opts: opts}
}

// Catalogue builds on the first call and returns the same catalogue after
// that. Safe for concurrent first use.
func (l *Library) Catalogue() *Catalogue {
	l.once.Do(func() {
		l.cat = BuildCatalogue(l.opts...)
	})
	return l.cat
}
