package renderer

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fly camera. Its view matrix is the renderer's world to camera
// transform and its projection the camera to clip transform.
type Camera struct {
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3
	Up         mgl32.Vec3
	Right      mgl32.Vec3
	Projection mgl32.Mat4
	Pitch      float32 // Degrees
	Yaw        float32 // Degrees

	WorldUp     mgl32.Vec3
	Speed       float32
	Sensitivity float32
	Fov         float32 // Vertical field of view in degrees
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool
}

func NewDefaultCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 0, 5},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Speed:       5,
		Sensitivity: 0.1,
		Fov:         45.0,
		Near:        0.1,
		Far:         1000.0,
		AspectRatio: 1,
	}
	if height > 0 {
		camera.AspectRatio = float32(width) / float32(height)
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

// SetViewport keeps the aspect ratio in step with the framebuffer. Empty
// viewports (minimised windows) are ignored.
func (c *Camera) SetViewport(vp Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	c.AspectRatio = float32(vp.Width) / float32(vp.Height)
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// ProcessKeyboard moves the camera with WASD and reports whether it moved
func (c *Camera) ProcessKeyboard(window *glfw.Window, deltaTime float32) bool {
	velocity := c.Speed * deltaTime
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		velocity *= 2.5
	}

	moved := false
	step := func(key glfw.Key, dir mgl32.Vec3) {
		if window.GetKey(key) == glfw.Press {
			c.Position = c.Position.Add(dir.Mul(velocity))
			moved = true
		}
	}
	step(glfw.KeyW, c.Front)
	step(glfw.KeyS, c.Front.Mul(-1))
	step(glfw.KeyA, c.Right.Mul(-1))
	step(glfw.KeyD, c.Right)
	return moved
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32) {
	c.Yaw += xoffset * c.Sensitivity
	if c.InvertMouse {
		yoffset = -yoffset
	}
	c.Pitch = mgl32.Clamp(c.Pitch+yoffset*c.Sensitivity, -89.0, 89.0)
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
