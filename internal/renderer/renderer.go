package renderer

import (
	"GopherBuiltins/internal/builtin"

	"github.com/go-gl/mathgl/mgl32"
)

type Viewport struct {
	Width  int32
	Height int32
}

type Light struct {
	Position        mgl32.Vec3
	Direction       mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	Mode            string // "directional", "point", "spot"
	CameraRelative  bool   // Position and direction are given in camera space
	ShadowIntensity float32
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 1500.0, 0.0},
		Direction:       mgl32.Vec3{0, -1, 0}, // Default direction pointing down
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		Mode:            "point",
		ShadowIntensity: 0.7,
	}
}

// CreateDirectionalLight creates a directional light (like the sun)
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "directional"
	light.Direction = direction.Normalize()
	light.Color = color
	light.Intensity = intensity
	return light
}

// CreatePointLight creates a point light at position
func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "point"
	light.Position = position
	light.Color = color
	light.Intensity = intensity
	return light
}

// CreateSunlight creates a realistic sun light
func CreateSunlight(direction mgl32.Vec3) *Light {
	return CreateDirectionalLight(direction, mgl32.Vec3{1.0, 0.95, 0.8}, 1.2)
}

// CreateHeadlight creates a directional light that follows the camera
func CreateHeadlight() *Light {
	light := CreateDirectionalLight(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 1, 1}, 1.0)
	light.CameraRelative = true
	return light
}

func (l *Light) style() builtin.LightStyle {
	switch l.Mode {
	case "directional":
		if l.CameraRelative {
			return builtin.CameraDirectional
		}
		return builtin.WorldDirectional
	case "spot":
		if l.CameraRelative {
			return builtin.CameraSpot
		}
		return builtin.WorldSpot
	case "ambient":
		return builtin.Ambient
	}
	if l.CameraRelative {
		return builtin.CameraPoint
	}
	return builtin.WorldPoint
}

// Builtin converts the light to the form the built-in uniforms consume.
func (l *Light) Builtin() builtin.Light {
	cs := builtin.World
	if l.CameraRelative {
		cs = builtin.Camera
	}
	return builtin.Light{
		Position:         l.Position,
		Direction:        l.Direction,
		Style:            l.style(),
		CoordinateSystem: cs,
		ShadowIntensity:  l.ShadowIntensity,
	}
}
