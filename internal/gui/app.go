package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColGrid    = rl.NewColor(77, 77, 77, 255)
	ColStar    = rl.NewColor(255, 255, 255, 255)
	ColHorizon = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(230, 230, 230, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
	ColAccent  = rl.NewColor(255, 174, 66, 255)
)

type Window struct {
	Width, Height int
	Title         string
}

type App struct {
	Sim     *sim.Simulation
	Window  Window
	Camera  rl.Camera3D
	Font    rl.Font
	Running bool

	History *sim.History
}

func initWindow(w Window) {
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono if present and falls back to the built-in font.
func loadFont() rl.Font {
	const path = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	if _, err := os.Stat(path); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(s *sim.Simulation, w Window) *App {
	a := &App{
		Sim:     s,
		Window:  w,
		Font:    loadFont(),
		Running: true,
		History: sim.NewHistory(300),
	}
	s.AddObserver(a.History)
	a.syncCamera()
	return a
}

// Run opens the window and blocks until Esc exits the process or the
// window is closed.
func Run(s *sim.Simulation, w Window) {
	initWindow(w)
	defer rl.CloseWindow()
	app := NewApp(s, w)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func readInput() camera.Input {
	return camera.Input{
		Closer:  rl.IsKeyDown(rl.KeyW),
		Farther: rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Down:    rl.IsKeyDown(rl.KeyQ),
		Up:      rl.IsKeyDown(rl.KeyE),
		Toggle:  rl.IsKeyPressed(rl.KeySpace),
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		rl.CloseWindow()
		os.Exit(0)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
		a.syncCamera()
	}

	if !a.Running {
		return
	}

	dt := float64(rl.GetFrameTime())
	if dt <= 0 {
		return
	}
	a.Sim.Step(dt, readInput())
	a.syncCamera()
}

// syncCamera copies the controller pose into the raylib camera.
func (a *App) syncCamera() {
	cam := a.Sim.Camera
	if cam == nil {
		return
	}
	a.Camera = rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	a.drawScene()
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText(HelpText, a.Window.Width-310, 10, 14, helpColor(rl.GetTime()))

	status := "RUNNING"
	col := ColAccent
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, 20, 20, 16, col)

	a.DrawTelemetry()
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 20, a.Window.Height-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the recent light curve in the bottom-left corner.
func (a *App) DrawTelemetry() {
	lum := a.History.Luminosity
	if len(lum) < 2 {
		return
	}

	rectX, rectY := 20, a.Window.Height-110
	width, height := 360, 60

	points := telemetryStrip(lum, float32(rectX), float32(rectY), float32(width), float32(height))
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("L: %.2f", lum[len(lum)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}
