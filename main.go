package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stewi1014/gltriangle/config"
	"github.com/stewi1014/gltriangle/programs"
)

// GLFW and the GL context must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

var (
	configPath string
	verbose    bool
	debug      bool
	width      int
	height     int
	shape      string
	program    string
	wireframe  bool
	showFPS    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gltriangle",
	Short: "Draw a triangle whose colour follows the keyboard",
	Long: `Opens an OpenGL 3.3 window and draws a single shape.

Hold W/S to raise or lower green, D/A for red and E/Q for blue.
P saves a screenshot and Escape quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logConfig := zap.NewProductionConfig()
		logConfig.Encoding = "console"
		logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = logConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

var shadersCmd = &cobra.Command{
	Use:   "shaders",
	Short: "List the built in shader programs and shapes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "programs:")
		for i := 0; i < programs.NumPrograms(); i++ {
			p := programs.GetProgram(i)
			fmt.Fprintf(out, "  %-10s %s\n", p.Name, p.Description)
		}
		fmt.Fprintln(out, "shapes:")
		for _, name := range programs.ShapeNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "check for GL errors after every call")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height")
	rootCmd.Flags().StringVar(&shape, "shape", "", "shape to draw (triangle, quad)")
	rootCmd.Flags().StringVar(&program, "program", "", "shader program to draw with")
	rootCmd.Flags().BoolVar(&wireframe, "wireframe", false, "draw polygon outlines only")
	rootCmd.Flags().BoolVar(&showFPS, "fps", false, "show the frame rate in the title")

	rootCmd.AddCommand(shadersCmd)
}

// loadConfig reads the config file, if any, and applies command line flags
// over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("shape") {
		cfg.Render.Shape = shape
	}
	if flags.Changed("program") {
		cfg.Render.Program = program
	}
	if flags.Changed("wireframe") && wireframe {
		cfg.Render.DrawMode = "line"
	}
	if flags.Changed("fps") {
		cfg.Window.ShowFPS = showFPS
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	// PersistentPostRun is skipped when RunE fails.
	defer logger.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	app, err := NewApplication(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	err = app.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
