package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// DrawMode is the polygon rasterisation mode a mesh is drawn with.
type DrawMode int

const (
	Fill DrawMode = iota
	Line
	Point
)

func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToLower(s) {
	case "", "fill":
		return Fill, nil
	case "line", "wireframe":
		return Line, nil
	case "point":
		return Point, nil
	}
	return Fill, fmt.Errorf("unknown draw mode %q", s)
}

func (m DrawMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case Line:
		return "line"
	case Point:
		return "point"
	}
	return fmt.Sprintf("DrawMode(%d)", int(m))
}

func (m DrawMode) GLEnum() uint32 {
	switch m {
	case Line:
		return gl.LINE
	case Point:
		return gl.POINT
	}
	return gl.FILL
}

const (
	floatSize      = 4
	indexSize      = 4
	positionLength = 3
	vertexStride   = positionLength * floatSize
)

// Mesh is indexed geometry uploaded to the GPU along with the program it is
// drawn with. Vertices are tightly packed vec3 positions bound to attribute 0.
type Mesh struct {
	VAO uint32
	VBO uint32
	EBO uint32

	DrawMode   DrawMode
	IndexCount int32
	Program    *ShaderProgram
}

// validateGeometry checks vertices and indices describe a drawable mesh.
func validateGeometry(vertices []float32, indices []uint32) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return ErrEmptyMesh
	}
	if len(vertices)%positionLength != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of %d", len(vertices), positionLength)
	}

	n := uint32(len(vertices) / positionLength)
	for i, index := range indices {
		if index >= n {
			return fmt.Errorf("%w: indices[%d] = %d with %d vertices", ErrIndexOutOfRange, i, index, n)
		}
	}
	return nil
}

// CreateMesh uploads vertices and indices into a new vertex array object.
// The program is shared, not owned, by the mesh.
func CreateMesh(vertices []float32, indices []uint32, program *ShaderProgram) (Mesh, error) {
	if program == nil {
		return Mesh{}, fmt.Errorf("mesh needs a shader program")
	}
	if err := validateGeometry(vertices, indices); err != nil {
		return Mesh{}, err
	}

	mesh := Mesh{
		IndexCount: int32(len(indices)),
		Program:    program,
	}

	gl.GenVertexArrays(1, &mesh.VAO)
	checkError()
	gl.GenBuffers(1, &mesh.VBO)
	checkError()
	gl.GenBuffers(1, &mesh.EBO)
	checkError()

	gl.BindVertexArray(mesh.VAO)
	checkError()

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	checkError()
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)
	checkError()

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	checkError()
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*indexSize, gl.Ptr(indices), gl.STATIC_DRAW)
	checkError()

	gl.VertexAttribPointerWithOffset(0, positionLength, gl.FLOAT, false, vertexStride, 0)
	checkError()
	gl.EnableVertexAttribArray(0)
	checkError()

	gl.BindVertexArray(0)
	checkError()

	return mesh, nil
}

// CreateMeshFromSource compiles a program for the mesh alone.
func CreateMeshFromSource(vertices []float32, indices []uint32, vertexSource, fragmentSource string) (Mesh, error) {
	program, err := CreateShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return Mesh{}, err
	}

	mesh, err := CreateMesh(vertices, indices, program)
	if err != nil {
		program.Delete()
		return Mesh{}, err
	}
	return mesh, nil
}

// Draw draws the mesh with whatever program is currently in use.
func (m Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	checkError()
	gl.PolygonMode(gl.FRONT_AND_BACK, m.DrawMode.GLEnum())
	checkError()
	gl.DrawElements(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	checkError()
	gl.BindVertexArray(0)
	checkError()
}

func (m Mesh) DrawWithShader() {
	m.Program.Use()
	m.Draw()
}

// Delete frees the mesh's buffers. The program is left alone.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	checkError()
	gl.DeleteBuffers(1, &m.VBO)
	checkError()
	gl.DeleteBuffers(1, &m.EBO)
	checkError()
	*m = Mesh{}
}
