package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stewi1014/gltriangle/input"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gltriangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, mgl32.Vec4{0.2, 0.3, 0.3, 1.0}, cfg.ClearColour())

	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	require.Equal(t, input.DefaultBindings, bindings)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1024
  title: Colours
render:
  shape: quad
  draw_mode: line
controls:
  speed: 0.5
  red:
    increase: up
    decrease: down
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Window.Width = 1024
	want.Window.Title = "Colours"
	want.Render.Shape = "quad"
	want.Render.DrawMode = "line"
	want.Controls.Speed = 0.5
	want.Controls.Red = BindingConfig{Increase: "up", Decrease: "down"}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	require.Equal(t, input.Binding{Increase: 265, Decrease: 264}, bindings[0])
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"size":    "window:\n  width: 0\n",
		"colour":  "render:\n  clear_colour: [0.2, 0.3, 1.5, 1]\n",
		"program": "render:\n  program: mandelbrot\n",
		"shape":   "render:\n  shape: hexagon\n",
		"mode":    "render:\n  draw_mode: dotted\n",
		"speed":   "controls:\n  speed: -1\n",
		"binding": "controls:\n  green:\n    increase: ww\n",
		"capture": "controls:\n  capture: ''\n",
		"syntax":  "window: [\n",
		"swap":    "window:\n  swap_interval: -2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := Default()
	cfg.Debug = true
	cfg.Render.Program = "gradient"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Debug)
	require.Equal(t, "gradient", loaded.Render.Program)
}
