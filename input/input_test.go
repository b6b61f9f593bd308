package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Key
	}{
		{"w", 'W'},
		{"W", 'W'},
		{"7", '7'},
		{"escape", KeyEscape},
		{" Up ", 265},
		{"f12", 301},
	} {
		k, err := ParseKey(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, k, tc.in)
	}

	_, err := ParseKey("ww")
	require.Error(t, err)
	_, err = ParseKey("")
	require.Error(t, err)
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "W", Key('W').String())
	require.Equal(t, "escape", KeyEscape.String())
	require.Equal(t, "Key(999)", Key(999).String())
}

func TestKeyboardHandle(t *testing.T) {
	var kb Keyboard

	require.False(t, kb.Handle('W', Press))
	require.True(t, kb.Pressed('W'))

	require.False(t, kb.Handle('W', Repeat))
	require.True(t, kb.Pressed('W'))

	kb.Handle('W', Release)
	require.False(t, kb.Pressed('W'))

	require.True(t, kb.Handle(KeyEscape, Press))
	require.False(t, kb.Handle(KeyEscape, Release))

	require.False(t, kb.Handle(KeyUnknown, Press))
	require.False(t, kb.Handle(MaxKeys+5, Press))
	require.False(t, kb.Pressed(KeyUnknown))
	require.False(t, kb.Pressed(MaxKeys))
}

type heldKeys map[Key]bool

func (h heldKeys) Pressed(k Key) bool { return h[k] }

func TestColourControllerUpdate(t *testing.T) {
	c := NewColourController()
	require.Equal(t, mgl32.Vec4{0, 0, 0, 1}, c.Colour())

	c.Update(0.25, heldKeys{'W': true})
	require.InDelta(t, 0.25, c.RGB()[1], 1e-6)

	c.Update(0.25, heldKeys{'D': true, 'E': true})
	require.InDelta(t, 0.25, c.RGB()[0], 1e-6)
	require.InDelta(t, 0.25, c.RGB()[1], 1e-6)
	require.InDelta(t, 0.25, c.RGB()[2], 1e-6)

	c.Update(0.1, heldKeys{'S': true})
	require.InDelta(t, 0.15, c.RGB()[1], 1e-6)
}

func TestColourControllerIncreaseWins(t *testing.T) {
	c := NewColourController()
	c.Update(0.5, heldKeys{'W': true, 'S': true})
	require.InDelta(t, 0.5, c.RGB()[1], 1e-6)
}

func TestColourControllerClamps(t *testing.T) {
	c := NewColourController()

	c.Update(3, heldKeys{'D': true, 'W': true, 'E': true})
	require.Equal(t, mgl32.Vec3{1, 1, 1}, c.RGB())

	c.Update(0.5, heldKeys{'A': true})
	require.InDelta(t, 0.5, c.RGB()[0], 1e-6)

	c.Update(10, heldKeys{'A': true, 'S': true, 'Q': true})
	require.Equal(t, mgl32.Vec3{0, 0, 0}, c.RGB())

	c.Set(mgl32.Vec3{-1, 0.5, 2})
	require.Equal(t, mgl32.Vec3{0, 0.5, 1}, c.RGB())
}

func TestColourControllerSpeed(t *testing.T) {
	c := NewColourController()
	c.Speed = 0.5
	c.Update(1, heldKeys{'E': true})
	require.InDelta(t, 0.5, c.RGB()[2], 1e-6)
}

func TestFrameClock(t *testing.T) {
	var c FrameClock

	require.InDelta(t, 0.5, c.Tick(0.5), 1e-6)
	require.Zero(t, c.FPS())

	require.InDelta(t, 0.25, c.Tick(0.75), 1e-6)
	require.InDelta(t, 0.25, c.Tick(1.0), 1e-6)
	require.InDelta(t, 3.0, c.FPS(), 1e-9)

	require.Zero(t, c.Tick(0.9))
}
