// Package config loads the demo's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/stewi1014/gltriangle/gfx"
	"github.com/stewi1014/gltriangle/input"
	"github.com/stewi1014/gltriangle/programs"
)

// Config holds all settings for a run.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Render   RenderConfig   `yaml:"render"`
	Controls ControlsConfig `yaml:"controls"`

	// Debug drains glGetError after every GL call.
	Debug bool `yaml:"debug"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`

	// ShowFPS appends the frame rate to the title once a second.
	ShowFPS bool `yaml:"show_fps"`

	// SwapInterval is passed to glfw.SwapInterval; 1 waits for vsync.
	SwapInterval int `yaml:"swap_interval"`
}

type RenderConfig struct {
	ClearColour [4]float32 `yaml:"clear_colour"`
	Program     string     `yaml:"program"`
	Shape       string     `yaml:"shape"`
	DrawMode    string     `yaml:"draw_mode"`

	// ScreenshotDir is where captured frames are written.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

type ControlsConfig struct {
	// Speed is the change in a colour channel per second a key is held.
	Speed float32 `yaml:"speed"`

	Red     BindingConfig `yaml:"red"`
	Green   BindingConfig `yaml:"green"`
	Blue    BindingConfig `yaml:"blue"`
	Capture string        `yaml:"capture"`
}

type BindingConfig struct {
	Increase string `yaml:"increase"`
	Decrease string `yaml:"decrease"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:        800,
			Height:       600,
			Title:        "LearnOpenGL",
			SwapInterval: 1,
		},
		Render: RenderConfig{
			ClearColour:   [4]float32{0.2, 0.3, 0.3, 1.0},
			Program:       "solid",
			Shape:         "triangle",
			DrawMode:      "fill",
			ScreenshotDir: ".",
		},
		Controls: ControlsConfig{
			Speed:   1,
			Red:     BindingConfig{Increase: "d", Decrease: "a"},
			Green:   BindingConfig{Increase: "w", Decrease: "s"},
			Blue:    BindingConfig{Increase: "e", Decrease: "q"},
			Capture: "p",
		},
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap_interval %d must not be negative", c.Window.SwapInterval))
	}
	for i, v := range c.Render.ClearColour {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_colour[%d] = %v is outside [0, 1]", i, v))
		}
	}
	if _, err := programs.FindProgram(c.Render.Program); err != nil {
		errs = append(errs, err)
	}
	if _, err := programs.GetShape(c.Render.Shape); err != nil {
		errs = append(errs, err)
	}
	if _, err := gfx.ParseDrawMode(c.Render.DrawMode); err != nil {
		errs = append(errs, err)
	}
	if c.Controls.Speed <= 0 {
		errs = append(errs, fmt.Errorf("controls speed %v must be positive", c.Controls.Speed))
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	if _, err := input.ParseKey(c.Controls.Capture); err != nil {
		errs = append(errs, fmt.Errorf("capture: %w", err))
	}

	return errors.Join(errs...)
}

// Bindings returns the red, green and blue key bindings.
func (c *Config) Bindings() ([3]input.Binding, error) {
	var bindings [3]input.Binding
	for i, b := range []struct {
		name string
		BindingConfig
	}{
		{"red", c.Controls.Red},
		{"green", c.Controls.Green},
		{"blue", c.Controls.Blue},
	} {
		inc, err := input.ParseKey(b.Increase)
		if err != nil {
			return bindings, fmt.Errorf("%s increase: %w", b.name, err)
		}
		dec, err := input.ParseKey(b.Decrease)
		if err != nil {
			return bindings, fmt.Errorf("%s decrease: %w", b.name, err)
		}
		bindings[i] = input.Binding{Increase: inc, Decrease: dec}
	}
	return bindings, nil
}

func (c *Config) ClearColour() mgl32.Vec4 {
	return mgl32.Vec4(c.Render.ClearColour)
}
