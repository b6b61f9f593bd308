package programs

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Uniforms struct {
	Colour mgl32.Vec4 `uniform:"ourColor"`
}

func (u *Uniforms) DefaultValues() {
	u.Colour = mgl32.Vec4{0, 0, 0, 1}
}
