package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// KeyState reports whether a key is held.
type KeyState interface {
	Pressed(Key) bool
}

// Binding moves a colour channel up while Increase is held and down while
// Decrease is held.
type Binding struct {
	Increase Key
	Decrease Key
}

// DefaultBindings are the red, green and blue bindings.
var DefaultBindings = [3]Binding{
	{Increase: 'D', Decrease: 'A'},
	{Increase: 'W', Decrease: 'S'},
	{Increase: 'E', Decrease: 'Q'},
}

// ColourController accumulates held keys into an RGB colour with every
// channel kept in [0, 1].
type ColourController struct {
	Bindings [3]Binding
	// Speed is how far a channel moves per second of holding its key.
	Speed float32

	rgb mgl32.Vec3
}

func NewColourController() *ColourController {
	return &ColourController{
		Bindings: DefaultBindings,
		Speed:    1,
	}
}

// Update moves every channel whose key is held by dt seconds worth of
// Speed. Increase takes precedence when both keys of a channel are held.
func (c *ColourController) Update(dt float32, keys KeyState) {
	step := dt * c.Speed
	for i, b := range c.Bindings {
		if keys.Pressed(b.Increase) {
			c.rgb[i] += step
		} else if keys.Pressed(b.Decrease) {
			c.rgb[i] -= step
		}
		c.rgb[i] = mgl32.Clamp(c.rgb[i], 0, 1)
	}
}

// Set replaces the colour, clamping each channel.
func (c *ColourController) Set(rgb mgl32.Vec3) {
	for i := range rgb {
		c.rgb[i] = mgl32.Clamp(rgb[i], 0, 1)
	}
}

func (c *ColourController) RGB() mgl32.Vec3 {
	return c.rgb
}

// Colour returns the colour as opaque RGBA.
func (c *ColourController) Colour() mgl32.Vec4 {
	return c.rgb.Vec4(1)
}
