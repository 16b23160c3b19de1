package builtin

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type LightStyle int

const (
	WorldDirectional LightStyle = iota
	CameraDirectional
	WorldPoint
	CameraPoint
	WorldSpot
	CameraSpot
	Ambient
)

// CoordinateSystem is the frame a light's position and direction are given in.
type CoordinateSystem int

const (
	World CoordinateSystem = iota
	Camera
)

type Light struct {
	Position         mgl32.Vec3
	Direction        mgl32.Vec3
	Style            LightStyle
	CoordinateSystem CoordinateSystem
	ShadowIntensity  float32
}

// InCameraSpace reports whether the light moves with the camera.
func (l Light) InCameraSpace() bool {
	return l.CoordinateSystem == Camera
}

func defaultLights() []Light {
	return []Light{{
		Direction:        mgl32.Vec3{1, -1, -3},
		Style:            WorldDirectional,
		CoordinateSystem: World,
		ShadowIntensity:  0.7,
	}}
}

// LightShim resolves a renderer's lights, standing in a single default
// light for renderers that cannot report any.
type LightShim struct {
	fallback func() []Light
}

func NewLightShim() *LightShim {
	return &LightShim{fallback: sync.OnceValue(defaultLights)}
}

// Lights returns the live light list when the renderer supports it and the
// memoized default otherwise. The result is not clamped to MaxLights.
func (s *LightShim) Lights(state State) []Light {
	if state.LightCapability() == LightsSupported {
		return state.Lights()
	}
	return s.fallback()
}

// bounded returns at most MaxLights lights, in renderer order.
func bounded(lights []Light) []Light {
	if len(lights) > MaxLights {
		return lights[:MaxLights]
	}
	return lights
}
