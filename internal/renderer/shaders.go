package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a vertex/fragment program the host compiles itself. The
// built-in uniforms only ever see its program handle.
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
}

func NewShader(vertexSource, fragmentSource string) *Shader {
	return &Shader{vertexSource: vertexSource, fragmentSource: fragmentSource}
}

// NewPreviewShader pairs fragmentSource with the fullscreen triangle vertex shader.
func NewPreviewShader(fragmentSource string) *Shader {
	return NewShader(PreviewVertexShader, fragmentSource)
}

func (shader *Shader) Program() uint32 { return shader.program }

func (shader *Shader) IsCompiled() bool { return shader.program != 0 }

// Compile compiles and links both stages. Requires a current GL context.
func (shader *Shader) Compile() error {
	vs, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return fmt.Errorf("fragment shader: %w", err)
	}
	program, err := GenShaderProgram(vs, fs)
	if err != nil {
		return err
	}
	shader.program = program
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

// PreviewVertexShader draws one triangle covering the viewport; no vertex
// buffer is needed.
var PreviewVertexShader = `#version 330 core
out vec2 uv;

void main() {
    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
    uv = pos;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

// PreviewFragmentShader shades a sphere with the scene lights, using only
// built-in uniforms.
var PreviewFragmentShader = `#version 330 core
in vec2 uv;
out vec4 FragColor;

uniform vec2 _viewportSize;
uniform float _time;
uniform mat4 _worldToCamera;
uniform mat3 _worldToCameraNormal;
uniform int _lightCount;
uniform vec3 _lightDirection[4];
uniform int _lightInCameraSpace[4];

void main() {
    vec2 p = (gl_FragCoord.xy - 0.5 * _viewportSize) / _viewportSize.y * 2.5;
    float r2 = dot(p, p);
    if (r2 > 1.0) {
        FragColor = vec4(0.05, 0.05, 0.08 + 0.04 * sin(_time), 1.0);
        return;
    }
    vec3 n = vec3(p, sqrt(1.0 - r2));
    vec3 color = vec3(0.08);
    for (int i = 0; i < _lightCount; i++) {
        vec3 l = -_lightDirection[i];
        if (_lightInCameraSpace[i] == 0) {
            l = _worldToCameraNormal * l;
        }
        color += vec3(0.8) * max(dot(n, normalize(l)), 0.0);
    }
    FragColor = vec4(color, 1.0);
}
`
