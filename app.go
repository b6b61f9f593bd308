package main

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/stewi1014/gltriangle/config"
	"github.com/stewi1014/gltriangle/gfx"
	"github.com/stewi1014/gltriangle/input"
	"github.com/stewi1014/gltriangle/programs"
)

// NewApplication opens the window and uploads the configured program and
// shape. glfw.Init must have been called on the current, locked thread.
func NewApplication(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	program, err := programs.FindProgram(cfg.Render.Program)
	if err != nil {
		return nil, err
	}
	shape, err := programs.GetShape(cfg.Render.Shape)
	if err != nil {
		return nil, err
	}
	drawMode, err := gfx.ParseDrawMode(cfg.Render.DrawMode)
	if err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	captureKey, err := input.ParseKey(cfg.Controls.Capture)
	if err != nil {
		return nil, fmt.Errorf("capture key: %w", err)
	}

	a := &Application{
		cfg:        cfg,
		logger:     logger,
		colour:     input.NewColourController(),
		captureKey: captureKey,
	}
	a.colour.Bindings = bindings
	a.colour.Speed = cfg.Controls.Speed
	a.uniforms.DefaultValues()

	a.window, err = NewRenderWindow(cfg.Window, logger)
	if err != nil {
		return nil, err
	}
	a.window.SetKeyCallback(a.onKey)

	if cfg.Debug {
		gfx.EnableErrorChecks(logger)
	}

	a.program, err = gfx.CreateShaderProgram(program.VertexShader, program.FragmentShader)
	if err != nil {
		a.window.Destroy()
		return nil, fmt.Errorf("program %s: %w", program.Name, err)
	}

	err = a.program.BindUniforms(&a.uniforms)
	if err != nil {
		a.program.Delete()
		a.window.Destroy()
		return nil, fmt.Errorf("program %s: %w", program.Name, err)
	}

	a.mesh, err = gfx.CreateMesh(shape.Vertices, shape.Indices, a.program)
	if err != nil {
		a.program.Delete()
		a.window.Destroy()
		return nil, fmt.Errorf("shape %s: %w", cfg.Render.Shape, err)
	}
	a.mesh.DrawMode = drawMode

	logger.Info("scene ready",
		zap.String("program", program.Name),
		zap.String("shape", cfg.Render.Shape),
		zap.Stringer("drawMode", drawMode),
	)

	return a, nil
}

type Application struct {
	cfg    *config.Config
	logger *zap.Logger
	window *RenderWindow

	program  *gfx.ShaderProgram
	mesh     gfx.Mesh
	uniforms programs.Uniforms

	keyboard input.Keyboard
	colour   *input.ColourController
	clock    input.FrameClock

	captureKey       input.Key
	captureRequested bool
}

func (a *Application) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if a.keyboard.Handle(input.Key(key), input.Action(action)) {
		a.window.SetShouldClose(true)
	}

	if input.Key(key) == a.captureKey && action == glfw.Press {
		a.captureRequested = true
	}
}

// Run draws frames until the window is closed or ctx is done.
func (a *Application) Run(ctx context.Context) error {
	lastFPS := 0.0
	for !a.window.ShouldClose() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		glfw.PollEvents()

		dt := a.clock.Tick(glfw.GetTime())
		a.colour.Update(dt, &a.keyboard)
		a.uniforms.Colour = a.colour.Colour()

		a.render()

		if a.captureRequested {
			a.captureRequested = false
			path, err := a.capture()
			if err != nil {
				a.logger.Error("screenshot failed", zap.Error(err))
			} else {
				a.logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		a.window.SwapBuffers()

		if a.cfg.Window.ShowFPS {
			if fps := a.clock.FPS(); fps != lastFPS {
				a.window.ShowFPS(fps)
				lastFPS = fps
			}
		}
	}
	return nil
}

func (a *Application) render() {
	c := a.cfg.ClearColour()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if a.cfg.Debug {
		gfx.CheckError(a.logger)
	}

	a.program.Use()
	a.program.SetUniforms(&a.uniforms)
	a.mesh.Draw()
}

// Close frees the GPU resources and the window.
func (a *Application) Close() {
	a.mesh.Delete()
	a.program.Delete()
	a.window.Destroy()
}
