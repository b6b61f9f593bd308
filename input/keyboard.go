// Package input tracks held keys and turns them into the colour the
// triangle is drawn with.
package input

import (
	"fmt"
	"strings"
)

// Key is a GLFW key code. Printable keys use their upper case ASCII value.
type Key int

// Action mirrors the GLFW key actions.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

const (
	KeyUnknown Key = -1
	KeyEscape  Key = 256

	MaxKeys = 1024
)

var keyNames = map[string]Key{
	"escape": KeyEscape,
	"space":  32,
	"enter":  257,
	"tab":    258,
	"right":  262,
	"left":   263,
	"down":   264,
	"up":     265,
	"f12":    301,
}

// ParseKey reads a key name: a single letter or digit, or one of the named
// keys such as "escape", "space" or "up".
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Key(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return Key(c), nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

func (k Key) String() string {
	if k >= 'A' && k <= 'Z' || k >= '0' && k <= '9' {
		return string(rune(k))
	}
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Keyboard records which keys are currently held down.
type Keyboard struct {
	pressed [MaxKeys]bool
}

// Handle applies a key event. It reports whether the event asks for the
// window to close.
func (kb *Keyboard) Handle(key Key, action Action) (shouldClose bool) {
	if key == KeyEscape && action == Press {
		shouldClose = true
	}

	if key < 0 || key >= MaxKeys {
		return shouldClose
	}

	switch action {
	case Press:
		kb.pressed[key] = true
	case Release:
		kb.pressed[key] = false
	}
	return shouldClose
}

func (kb *Keyboard) Pressed(key Key) bool {
	if key < 0 || key >= MaxKeys {
		return false
	}
	return kb.pressed[key]
}
