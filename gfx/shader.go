// Package gfx wraps OpenGL shader, program and mesh objects in plain structs.
package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type ShaderType int

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderType(%d)", int(t))
}

// GLEnum returns the GL shader type for t.
func (t ShaderType) GLEnum() (uint32, error) {
	switch t {
	case VertexShader:
		return gl.VERTEX_SHADER, nil
	case FragmentShader:
		return gl.FRAGMENT_SHADER, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidShaderType, t)
}

type Shader struct {
	Type ShaderType
	ID   uint32
}

// CreateShader compiles source as a shader of the given type.
// The returned error carries the driver's info log when compilation fails.
func CreateShader(shaderType ShaderType, source string) (Shader, error) {
	glType, err := shaderType.GLEnum()
	if err != nil {
		return Shader{}, err
	}

	shader := Shader{
		Type: shaderType,
		ID:   gl.CreateShader(glType),
	}
	checkError()

	csources, free := gl.Strs(terminate(source))
	defer free()

	gl.ShaderSource(shader.ID, 1, csources, nil)
	checkError()
	gl.CompileShader(shader.ID)
	checkError()

	var status int32
	gl.GetShaderiv(shader.ID, gl.COMPILE_STATUS, &status)
	checkError()
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader.ID, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader.ID, l, nil, gl.Str(log))
		checkError()

		gl.DeleteShader(shader.ID)
		return Shader{}, fmt.Errorf("%v shader failed to compile: %v", shaderType, trimLog(log))
	}

	return shader, nil
}

// Delete flags the shader object for deletion.
func (s Shader) Delete() {
	gl.DeleteShader(s.ID)
	checkError()
}

// terminate appends the NUL byte gl.Strs and gl.Str expect.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func trimLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
