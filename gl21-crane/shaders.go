package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

var vertexShader = `
#version 120

// input
uniform mat4 projection;
uniform mat4 modelView;

// input
attribute vec3 vertexPosition;
attribute vec3 vertexNormal;

// output
varying float fragmentShade;

void main() {
	// faces turned towards the viewer are lit, the others darker
	vec3 n = normalize(mat3(modelView) * vertexNormal);
	fragmentShade = 0.55 + 0.45 * abs(n.z);
	gl_Position = projection * modelView * vec4(vertexPosition, 1);
}
` + "\x00"

var fragmentShader = `
#version 120

// input
uniform vec4 color;
varying float fragmentShade;

void main() {
	gl_FragColor = vec4(color.rgb * fragmentShade, color.a);
}
` + "\x00"

// newProgram compiles and links the two shaders. Nothing is left
// allocated on the GPU when it fails.
func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status, logLength int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		buf := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link shader program: %s", infoLog(buf))
	}
	// attached shaders are freed with the program
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status, logLength int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		buf := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", shaderKind(shaderType), infoLog(buf))
	}
	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

// infoLog strips the NUL padding and trailing newlines of a GL info log.
func infoLog(buf string) string {
	return strings.TrimRight(buf, "\x00\r\n ")
}

var glErrors = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// checkGLError panics on the first accumulated OpenGL error.
func checkGLError() {
	if glerr := gl.GetError(); glerr != gl.NO_ERROR {
		if errstr, ok := glErrors[glerr]; ok {
			panic(fmt.Sprintf("GL_ERROR: %s", errstr))
		}
		panic(fmt.Sprintf("GL_ERROR UNKNOWN: %v", glerr))
	}
}
