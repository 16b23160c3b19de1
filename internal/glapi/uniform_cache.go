package glapi

// UniformCache caches uniform locations per program to avoid repeated
// GetUniformLocation calls. Misses (-1) are cached too.
type UniformCache struct {
	gl        GL
	locations map[uint32]map[string]int32
}

// NewUniformCache creates a new uniform cache backed by gl
func NewUniformCache(gl GL) *UniformCache {
	return &UniformCache{
		gl:        gl,
		locations: make(map[uint32]map[string]int32),
	}
}

// GetLocation returns the cached uniform location or fetches and caches it
func (uc *UniformCache) GetLocation(program uint32, name string) int32 {
	locs, ok := uc.locations[program]
	if !ok {
		locs = make(map[string]int32)
		uc.locations[program] = locs
	}
	if loc, exists := locs[name]; exists {
		return loc
	}

	loc := uc.gl.GetUniformLocation(program, name)
	locs[name] = loc
	return loc
}

// Forget drops the cached locations of one program (call when it is relinked or deleted)
func (uc *UniformCache) Forget(program uint32) {
	delete(uc.locations, program)
}

// Clear clears the whole cache
func (uc *UniformCache) Clear() {
	uc.locations = make(map[uint32]map[string]int32)
}
