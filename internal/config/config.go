package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"GopherBuiltins/internal/builtin"
)

type Config struct {
	DebugLogging          bool     `json:"debug_logging"`
	FramebufferCapture    bool     `json:"framebuffer_capture"`
	CacheUniformLocations bool     `json:"cache_uniform_locations"`
	DisabledBuiltins      []string `json:"disabled_builtins,omitempty"`

	WindowWidth    int32  `json:"window_width"`
	WindowHeight   int32  `json:"window_height"`
	FragmentShader string `json:"fragment_shader,omitempty"`
}

func Default() Config {
	return Config{
		FramebufferCapture:    true,
		CacheUniformLocations: true,
		WindowWidth:           1024,
		WindowHeight:          768,
	}
}

// Load reads a JSON config on top of the defaults. A missing file returns the
// defaults together with an error wrapping os.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// IsNotExist reports whether err came from a missing config file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// DispatcherOptions maps the config onto built-in dispatcher options.
// Disabled names may be given with or without their array suffix.
func (c Config) DispatcherOptions(cat *builtin.Catalogue) ([]builtin.DispatcherOption, error) {
	var disabled []builtin.Kind
	for _, name := range c.DisabledBuiltins {
		p, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown built-in %q", name)
		}
		disabled = append(disabled, p.Kind())
	}
	if !c.FramebufferCapture {
		disabled = append(disabled, builtin.FrameBufferColor)
	}

	var opts []builtin.DispatcherOption
	if len(disabled) > 0 {
		opts = append(opts, builtin.WithDisabled(disabled...))
	}
	if c.CacheUniformLocations {
		opts = append(opts, builtin.WithLocationCache())
	}
	return opts, nil
}
