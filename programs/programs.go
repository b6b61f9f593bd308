package programs

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProgram = errors.New("unknown program")

//go:embed shaders/default.vert
var defaultVertexShader string

func NumPrograms() int {
	return len(programs)
}

func GetProgram(i int) Program {
	return programs[i]
}

// FindProgram returns the registered program with the given name.
func FindProgram(name string) (Program, error) {
	for _, p := range programs {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("%w %q", ErrUnknownProgram, name)
}

func NewProgram(p Program) error {
	if p.Name == "" {
		return errors.New("program needs a name")
	}
	if _, err := FindProgram(p.Name); err == nil {
		return fmt.Errorf("program %q already registered", p.Name)
	}
	programs = append(programs, p)
	return nil
}

var programs []Program

// Program is the GLSL source of a vertex and fragment shader pair.
// Every program draws vec3 positions at attribute location 0 and takes its
// colour from the Uniforms.
type Program struct {
	Name           string
	Description    string
	VertexShader   string
	FragmentShader string
}
