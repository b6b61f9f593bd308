package programs

import (
	_ "embed"
)

//go:embed shaders/solid.frag
var solidFragment string

//go:embed shaders/gradient.vert
var gradientVertex string

//go:embed shaders/gradient.frag
var gradientFragment string

func init() {
	NewProgram(Program{
		Name:           "solid",
		Description:    "fills the shape with the key controlled colour",
		VertexShader:   defaultVertexShader,
		FragmentShader: solidFragment,
	})

	NewProgram(Program{
		Name:           "gradient",
		Description:    "shades the colour from the bottom of the shape to the top",
		VertexShader:   gradientVertex,
		FragmentShader: gradientFragment,
	})
}
