package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newTestCommand gives each test a fresh flag set bound to the package flags.
func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	logger = zap.NewNop()
	configPath, debug, wireframe, showFPS = "", false, false, false
	width, height, shape, program = 0, 0, "", ""

	cmd := &cobra.Command{Use: "gltriangle"}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "")
	cmd.Flags().BoolVar(&debug, "debug", false, "")
	cmd.Flags().IntVar(&width, "width", 0, "")
	cmd.Flags().IntVar(&height, "height", 0, "")
	cmd.Flags().StringVar(&shape, "shape", "", "")
	cmd.Flags().StringVar(&program, "program", "", "")
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "")
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd := newTestCommand(t)

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, 600, cfg.Window.Height)
	require.Equal(t, "LearnOpenGL", cfg.Window.Title)
	require.Equal(t, "triangle", cfg.Render.Shape)
	require.Equal(t, "fill", cfg.Render.DrawMode)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 640\n  height: 480\nrender:\n  shape: quad\n"), 0o644))

	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("height", "360"))
	require.NoError(t, cmd.Flags().Set("wireframe", "true"))
	require.NoError(t, cmd.Flags().Set("debug", "true"))
	require.NoError(t, cmd.Flags().Set("fps", "true"))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, 640, cfg.Window.Width)
	require.Equal(t, 360, cfg.Window.Height)
	require.Equal(t, "quad", cfg.Render.Shape)
	require.Equal(t, "line", cfg.Render.DrawMode)
	require.True(t, cfg.Debug)
	require.True(t, cfg.Window.ShowFPS)
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Set("shape", "hexagon"))

	_, err := loadConfig(cmd)
	require.Error(t, err)
}

func TestShadersCommand(t *testing.T) {
	var out bytes.Buffer
	shadersCmd.SetOut(&out)
	shadersCmd.Run(shadersCmd, nil)

	require.Contains(t, out.String(), "solid")
	require.Contains(t, out.String(), "gradient")
	require.Contains(t, out.String(), "triangle")
	require.Contains(t, out.String(), "quad")
}

type countingSyncer struct {
	bytes.Buffer
	syncs int
}

func (s *countingSyncer) Sync() error {
	s.syncs++
	return nil
}

func TestRunWindowSyncsLoggerOnError(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Set("shape", "hexagon"))

	out := &countingSyncer{}
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		out,
		zapcore.DebugLevel,
	))

	require.Error(t, runWindow(cmd, nil))
	require.Equal(t, 1, out.syncs)
}
