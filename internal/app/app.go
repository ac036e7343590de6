// Package app implements the viewer main loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bevelbox/internal/config"
	"github.com/Faultbox/bevelbox/internal/engine/camera"
	"github.com/Faultbox/bevelbox/internal/engine/input"
	"github.com/Faultbox/bevelbox/internal/engine/lighting"
	"github.com/Faultbox/bevelbox/internal/engine/renderer"
	"github.com/Faultbox/bevelbox/internal/engine/texture"
	"github.com/Faultbox/bevelbox/internal/engine/window"
	"github.com/Faultbox/bevelbox/internal/scene"
	"github.com/Faultbox/bevelbox/pkg/geom"
	"github.com/Faultbox/bevelbox/pkg/math"
)

// rotateSpeed is the shape rotation per frame while an arrow key is held.
const rotateSpeed = 0.02

// groundColor is the flat color of the ground plane.
var groundColor = [3]float32{0.75, 0.75, 0.75}

// App is the viewer instance.
type App struct {
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera
	light    lighting.PointLight

	scene     *scene.Scene
	shapeBuf  *renderer.MeshBuffer
	groundBuf *renderer.MeshBuffer
	debugTex  uint32

	// Shape rotation around X, radians
	rotation float32
}

// New creates the viewer from loaded configuration.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing viewer",
		"variant", cfg.Scene.Variant,
		"fidelity", cfg.Scene.Fidelity,
	)

	a := &App{
		camera: camera.New(),
		light:  lighting.Default(),
	}

	// Window first: it owns the OpenGL context
	var err error
	a.window, err = window.New(window.Config{
		Title:      "bevelbox",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.Build(scene.Config{
		Variant:    scene.Variant(cfg.Scene.Variant),
		Fidelity:   geom.ParseFidelity(cfg.Scene.Fidelity),
		Box:        geom.NewBox(cfg.Scene.BoxX, cfg.Scene.BoxY, cfg.Scene.BoxZ, cfg.Scene.EdgeRadius),
		CellSize:   cfg.Scene.CellSize,
		WalkLength: cfg.Scene.WalkLength,
		Seed:       cfg.Scene.Seed,
		WallMarker: cfg.Scene.WallRune(),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.shapeBuf = a.renderer.UploadMesh(a.scene.Mesh)
	a.groundBuf = a.renderer.UploadMesh(a.scene.Ground)
	a.debugTex = texture.UploadUVDebug()

	a.input = input.New()

	slog.Info("viewer initialized", "instances", len(a.scene.Instances))
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
				}
			}
		}

		a.update()
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	slog.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// update advances shape rotation and camera movement from held keys.
func (a *App) update() {
	if a.input.IsKeyHeld(sdl.SCANCODE_RIGHT) {
		a.rotation -= rotateSpeed
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_LEFT) {
		a.rotation += rotateSpeed
	}

	if a.input.IsKeyHeld(sdl.SCANCODE_A) {
		a.camera.Orbit(rotateSpeed)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_D) {
		a.camera.Orbit(-rotateSpeed)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_W) {
		a.camera.Dolly(0.2)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_S) {
		a.camera.Dolly(-0.2)
	}
}

// render draws the current frame.
func (a *App) render() {
	a.renderer.Begin()
	a.renderer.SetCamera(a.camera.ViewMatrix(), a.camera.ProjectionMatrix(a.renderer.Aspect()))
	a.renderer.SetLight(a.light)

	// Ground plane, untextured
	a.renderer.DrawMesh(a.groundBuf, math.Identity(), groundColor, false)

	// Shape instances with the debug texture
	a.renderer.BindTexture(a.debugTex)
	rot := math.RotateX(a.rotation)
	for _, inst := range a.scene.Instances {
		model := math.Translate(inst.Translation).Mul(rot)
		a.renderer.DrawMesh(a.shapeBuf, model, [3]float32{1, 1, 1}, true)
	}
}
