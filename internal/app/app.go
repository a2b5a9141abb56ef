// Package app owns the frame loop: poll input, solve the wall, render.
package app

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/quarterfold/foldwall/internal/config"
	"github.com/quarterfold/foldwall/internal/engine/camera"
	"github.com/quarterfold/foldwall/internal/engine/debug"
	"github.com/quarterfold/foldwall/internal/engine/fold"
	"github.com/quarterfold/foldwall/internal/engine/hud"
	"github.com/quarterfold/foldwall/internal/engine/input"
	"github.com/quarterfold/foldwall/internal/engine/renderer"
	"github.com/quarterfold/foldwall/internal/engine/scene"
	"github.com/quarterfold/foldwall/internal/engine/texture"
	"github.com/quarterfold/foldwall/internal/engine/window"
	"github.com/quarterfold/foldwall/internal/logger"
	"github.com/quarterfold/foldwall/pkg/math"
)

// relaxDuration is how long the reset animation eases the pointer signal
// back to zero.
const relaxDuration = 0.6

// App is the application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	scene    *scene.Scene
	overlay  *hud.HUD
	solver   *fold.Solver
	capture  *debug.ScreenshotCapture

	// relax eases the applied pointer signal to zero after a reset.
	// nil when live input is in effect.
	relax *gween.Tween

	// Camera drag state (right mouse button).
	dragging         bool
	lastMouseX       int
	lastMouseY       int
	pendingSnapshots int
}

// New creates the application: window, GL state, solver, scene and overlay.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "foldwall",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	drawW, drawH := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: drawW, Height: drawH})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	a.solver, err = fold.New(fold.Config{
		Width:  cfg.Wall.Width,
		Height: cfg.Wall.Height,
		Strips: cfg.Wall.Strips,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating fold solver: %w", err)
	}

	tex, err := a.loadWallTexture()
	if err != nil {
		a.window.Close()
		return nil, err
	}

	a.scene, err = scene.New(drawW, drawH, a.solver.Columns(), tex)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	a.overlay, err = hud.New(drawW, drawH)
	if err != nil {
		a.scene.Close()
		a.window.Close()
		return nil, fmt.Errorf("creating hud: %w", err)
	}

	a.input = input.New()
	a.camera = camera.New()
	b := a.solver.Bounds()
	a.camera.FitToBounds(b.Min, b.Max)
	a.capture = debug.NewScreenshotCapture("screenshots", "foldwall")

	logger.Info("application initialized",
		zap.Int("strips", cfg.Wall.Strips),
		zap.Float32("wall_width", cfg.Wall.Width),
		zap.Float32("wall_height", cfg.Wall.Height),
	)

	return a, nil
}

// loadWallTexture loads the configured image, or generates procedural
// paper when no path is set.
func (a *App) loadWallTexture() (uint32, error) {
	if path := a.cfg.Wall.Texture; path != "" {
		img, err := texture.LoadFile(path)
		if err != nil {
			return 0, fmt.Errorf("wall texture: %w", err)
		}
		logger.Info("wall texture loaded", zap.String("path", path))
		return texture.Upload(img), nil
	}

	logger.Info("no wall texture configured, generating paper")
	img := texture.GeneratePaper(texture.DefaultPaperSize, time.Now().UnixNano())
	return texture.Upload(img), nil
}

// Run starts the main loop. Blocks until quit.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		elapsed := float32(now.Sub(start).Seconds())

		if a.input.Update() {
			break
		}
		a.handleEvents()

		// Build the solver frame from the current pointer sample.
		winW, winH := a.window.Size()
		px, py := a.input.Pointer(winW, winH)
		if a.cfg.Input.InvertY {
			py = -py
		}
		if a.relax != nil {
			scale, done := a.relax.Update(dt)
			px *= scale
			py *= scale
			if done {
				a.relax = nil
				logger.Debug("relax animation finished")
			}
		}

		a.solver.Solve(fold.Frame{Time: elapsed, PointerX: px, PointerY: py})
		a.camera.Update()

		a.renderer.Begin()
		a.scene.Draw(a.camera.ViewMatrix(), a.solver)
		a.overlay.Draw(math.Abs(px), px, py)

		if a.pendingSnapshots > 0 {
			a.pendingSnapshots--
			a.saveScreenshot()
		}

		a.window.SwapBuffers()
		a.limitFPS(now)

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("frame", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents processes the frame's input events.
func (a *App) handleEvents() {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			drawW, drawH := a.window.DrawableSize()
			a.renderer.Resize(drawW, drawH)
			a.scene.Resize(drawW, drawH)
			a.overlay.Resize(drawW, drawH)

		case input.EventKeyDown:
			a.handleKey(e.Key)

		case input.EventMouseMove:
			a.overlay.State.HandleMouseMove(e.MouseX, e.MouseY)
			if a.dragging {
				a.camera.HandleDrag(
					float32(e.MouseX-a.lastMouseX),
					float32(e.MouseY-a.lastMouseY),
				)
			}
			a.lastMouseX, a.lastMouseY = e.MouseX, e.MouseY

		case input.EventMouseDown:
			switch e.Button {
			case sdl.BUTTON_LEFT:
				a.overlay.State.HandleMouseDown(e.MouseX, e.MouseY)
			case sdl.BUTTON_RIGHT:
				a.dragging = true
				a.lastMouseX, a.lastMouseY = e.MouseX, e.MouseY
			}

		case input.EventMouseUp:
			switch e.Button {
			case sdl.BUTTON_LEFT:
				if a.overlay.State.HandleMouseUp(e.MouseX, e.MouseY) {
					a.startRelax()
				}
			case sdl.BUTTON_RIGHT:
				a.dragging = false
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(e.Wheel)
		}
	}
}

// handleKey processes a key press.
func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_R:
		a.startRelax()
	case sdl.SCANCODE_B:
		a.scene.ShowBounds = !a.scene.ShowBounds
		logger.Debug("bounds wireframe", zap.Bool("visible", a.scene.ShowBounds))
	case sdl.SCANCODE_F12:
		a.pendingSnapshots++
	}
}

// startRelax begins the reset animation: the applied pointer signal eases
// from full to zero, after which live input resumes.
func (a *App) startRelax() {
	a.relax = gween.New(1, 0, relaxDuration, ease.OutCubic)
	logger.Info("wall reset")
}

// saveScreenshot captures the frame just rendered, before buffer swap.
func (a *App) saveScreenshot() {
	w, h := a.renderer.Size()
	path, err := a.capture.CaptureFromPixels(a.renderer.ReadPixels(), w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// limitFPS sleeps the remainder of the frame budget when a cap is set.
func (a *App) limitFPS(frameStart time.Time) {
	if a.cfg.Graphics.FPSLimit <= 0 {
		return
	}
	budget := time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	if spent := time.Since(frameStart); spent < budget {
		time.Sleep(budget - spent)
	}
}

// Close cleans up all resources.
func (a *App) Close() {
	if a.overlay != nil {
		a.overlay.Close()
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
