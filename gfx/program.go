package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderProgram is a linked vertex and fragment shader pair.
// Meshes hold a pointer to the program they are drawn with, so a single
// program can be shared between them.
type ShaderProgram struct {
	Vertex   Shader
	Fragment Shader
	ID       uint32

	uniforms      map[string]int32
	uniformFields []uniformField
}

// CreateShaderProgram compiles both shader sources and links them.
// The shader objects are deleted once linked; their IDs remain on the
// program for reference only.
func CreateShaderProgram(vertexSource, fragmentSource string) (*ShaderProgram, error) {
	vertex, err := CreateShader(VertexShader, vertexSource)
	if err != nil {
		return nil, err
	}
	defer vertex.Delete()

	fragment, err := CreateShader(FragmentShader, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer fragment.Delete()

	p := &ShaderProgram{
		Vertex:   vertex,
		Fragment: fragment,
		ID:       gl.CreateProgram(),
		uniforms: make(map[string]int32),
	}
	checkError()

	gl.AttachShader(p.ID, vertex.ID)
	checkError()
	gl.AttachShader(p.ID, fragment.ID)
	checkError()
	gl.LinkProgram(p.ID)
	checkError()

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	checkError()
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(p.ID, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(p.ID, l, nil, gl.Str(log))
		checkError()

		gl.DeleteProgram(p.ID)
		return nil, fmt.Errorf("failed to link program: %v", trimLog(log))
	}

	return p, nil
}

func (p *ShaderProgram) Use() {
	gl.UseProgram(p.ID)
	checkError()
}

// UniformLocation looks up and caches the location of a uniform.
func (p *ShaderProgram) UniformLocation(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}

	loc := gl.GetUniformLocation(p.ID, gl.Str(terminate(name)))
	checkError()
	if loc == -1 {
		return -1, fmt.Errorf("%w %q", ErrUniformNotFound, name)
	}

	if p.uniforms == nil {
		p.uniforms = make(map[string]int32)
	}
	p.uniforms[name] = loc
	return loc, nil
}

func (p *ShaderProgram) Delete() {
	gl.DeleteProgram(p.ID)
	checkError()
	p.uniforms = nil
	p.uniformFields = nil
}
