package main

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/stewi1014/gltriangle/config"
)

// NewRenderWindow opens a window with a current OpenGL 3.3 core context.
// glfw.Init must have been called.
func NewRenderWindow(cfg config.WindowConfig, logger *zap.Logger) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	window, err := glfw.CreateWindow(
		cfg.Width,
		cfg.Height,
		cfg.Title,
		nil,
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
		title:  cfg.Title,
		logger: logger,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	logger.Info("opengl context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	glfw.SwapInterval(cfg.SwapInterval)

	w.resize(w.GetFramebufferSize())
	if cfg.Resizable {
		w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
			w.resize(width, height)
		})
	}

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
	title  string
	width  int
	height int

	logger *zap.Logger
}

func (w *RenderWindow) resize(width, height int) {
	w.width, w.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	w.logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// FramebufferSize returns the size of the viewport in pixels.
func (w *RenderWindow) FramebufferSize() (width, height int) {
	return w.width, w.height
}

// ShowFPS appends the frame rate to the window title.
func (w *RenderWindow) ShowFPS(fps float64) {
	w.SetTitle(fmt.Sprintf("%s | FPS: %.0f", w.title, fps))
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
