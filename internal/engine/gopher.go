package engine

import (
	"fmt"
	"runtime"

	"GopherBuiltins/internal/builtin"
	"GopherBuiltins/internal/config"
	"GopherBuiltins/internal/glapi"
	"GopherBuiltins/internal/logger"
	"GopherBuiltins/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Gopher is a small host that draws one user fragment shader over the whole
// window, filling its built-in uniforms every frame.
type Gopher struct {
	Width  int32
	Height int32
	Camera *renderer.Camera
	Lights []*renderer.Light
	// LegacyLights renders as a host that cannot report its lights.
	LegacyLights bool

	cfg        config.Config
	library    *builtin.Library
	shader     *renderer.Shader
	dispatcher *builtin.Dispatcher
	window     *glfw.Window
	vao        uint32

	lastX, lastY float64
	firstMouse   bool
}

func NewGopher(cfg config.Config, library *builtin.Library, fragmentSource string) *Gopher {
	if fragmentSource == "" {
		fragmentSource = renderer.PreviewFragmentShader
	}
	return &Gopher{
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
		Camera: renderer.NewDefaultCamera(cfg.WindowWidth, cfg.WindowHeight),
		Lights: []*renderer.Light{
			renderer.CreateSunlight(mgl32.Vec3{-1, -1, -1}),
			renderer.CreateHeadlight(),
		},
		cfg:        cfg,
		library:    library,
		shader:     renderer.NewPreviewShader(fragmentSource),
		firstMouse: true,
	}
}

// Render opens the window and runs the render loop until it is closed.
func (gopher *Gopher) Render() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), "Gopher built-ins", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	gopher.window = window
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	if err := gopher.shader.Compile(); err != nil {
		return fmt.Errorf("compiling preview shader: %w", err)
	}
	defer gopher.shader.Delete()

	cat := gopher.library.Catalogue()
	opts, err := gopher.cfg.DispatcherOptions(cat)
	if err != nil {
		return err
	}
	opts = append(opts, builtin.WithLogger(logger.Log))
	gopher.dispatcher = builtin.NewDispatcher(glapi.OpenGL{}, cat, opts...)
	defer gopher.dispatcher.Close()

	// Core profile needs a bound VAO even for attribute-less draws.
	gl.GenVertexArrays(1, &gopher.vao)
	defer gl.DeleteVertexArrays(1, &gopher.vao)

	window.SetCursorPosCallback(gopher.mouseCallback)
	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastTime := glfw.GetTime()

	for !gopher.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		fbWidth, fbHeight := gopher.window.GetFramebufferSize()
		viewport := renderer.Viewport{Width: int32(fbWidth), Height: int32(fbHeight)}
		if viewport.Width != gopher.Width || viewport.Height != gopher.Height {
			gopher.Width, gopher.Height = viewport.Width, viewport.Height
			gopher.Camera.SetViewport(viewport)
		}
		gopher.Camera.ProcessKeyboard(gopher.window, float32(deltaTime))

		gopher.drawFrame(viewport)

		gopher.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (gopher *Gopher) drawFrame(viewport renderer.Viewport) {
	gl.Viewport(0, 0, viewport.Width, viewport.Height)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	var snapshot *renderer.Snapshot
	if gopher.LegacyLights {
		snapshot = renderer.NewLegacySnapshot(gopher.Camera, viewport)
	} else {
		snapshot = renderer.NewSnapshot(gopher.Camera, viewport, gopher.Lights)
	}

	gopher.shader.Use()
	gopher.dispatcher.Apply(gopher.shader.Program(), snapshot)

	gl.BindVertexArray(gopher.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if w.GetMouseButton(glfw.MouseButtonRight) != glfw.Press {
		gopher.firstMouse = true
		return
	}
	if gopher.firstMouse {
		gopher.lastX, gopher.lastY = xpos, ypos
		gopher.firstMouse = false
		return
	}

	xoffset := xpos - gopher.lastX
	yoffset := gopher.lastY - ypos // Reversed since y-coordinates go from bottom to top
	gopher.lastX, gopher.lastY = xpos, ypos

	gopher.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset))
}
