package programs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownShape = errors.New("unknown shape")

// Shape is indexed geometry of packed vec3 positions in normalised device
// coordinates.
type Shape struct {
	Vertices []float32
	Indices  []uint32
}

var shapes = map[string]Shape{
	"triangle": {
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
			0.5, -0.5, 0.0,
		},
		Indices: []uint32{
			0, 1, 2,
		},
	},
	"quad": {
		Vertices: []float32{
			0.5, 0.5, 0.0,   // top right
			0.5, -0.5, 0.0,  // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0,  // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	},
}

func GetShape(name string) (Shape, error) {
	s, ok := shapes[strings.ToLower(name)]
	if !ok {
		return Shape{}, fmt.Errorf("%w %q", ErrUnknownShape, name)
	}
	return s, nil
}

func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
