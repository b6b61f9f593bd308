package programs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRegisteredPrograms(t *testing.T) {
	require.GreaterOrEqual(t, NumPrograms(), 2)
	require.Equal(t, "solid", GetProgram(0).Name)

	for i := 0; i < NumPrograms(); i++ {
		p := GetProgram(i)
		require.Contains(t, p.VertexShader, "#version 330 core", p.Name)
		require.Contains(t, p.VertexShader, "layout (location = 0) in vec3 position", p.Name)
		require.Contains(t, p.FragmentShader, "uniform vec4 ourColor", p.Name)
	}
}

func TestFindProgram(t *testing.T) {
	p, err := FindProgram("Gradient")
	require.NoError(t, err)
	require.Equal(t, "gradient", p.Name)

	_, err = FindProgram("mandelbrot")
	require.ErrorIs(t, err, ErrUnknownProgram)
}

func TestNewProgramRejectsDuplicates(t *testing.T) {
	require.Error(t, NewProgram(Program{Name: "solid"}))
	require.Error(t, NewProgram(Program{}))
}

func TestUniformsDefaultValues(t *testing.T) {
	var u Uniforms
	u.DefaultValues()
	require.Equal(t, mgl32.Vec4{0, 0, 0, 1}, u.Colour)
}

func TestShapes(t *testing.T) {
	if diff := cmp.Diff([]string{"quad", "triangle"}, ShapeNames()); diff != "" {
		t.Errorf("ShapeNames() mismatch (-want +got):\n%s", diff)
	}

	triangle, err := GetShape("triangle")
	require.NoError(t, err)
	require.Len(t, triangle.Vertices, 9)
	require.Equal(t, []uint32{0, 1, 2}, triangle.Indices)

	for _, name := range ShapeNames() {
		s, err := GetShape(name)
		require.NoError(t, err)
		require.Zero(t, len(s.Vertices)%3, name)
		for _, i := range s.Indices {
			require.Less(t, int(i), len(s.Vertices)/3, name)
		}
	}

	_, err = GetShape("hexagon")
	require.ErrorIs(t, err, ErrUnknownShape)
}
