// minmatrix - WebGL matrix tutorial scenes in the terminal
// Renders model/view/projection demos built on pkg/math3d with a software
// rasterizer, either live in the terminal or headless to a PNG.
//
// Controls:
//
//	Space       - Apply random spin impulse
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	X           - Toggle world axes
//	G           - Toggle ground grid
//	R           - Reset spin
//	?           - Toggle HUD overlay (FPS, scene, triangle count)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/minmatrix/pkg/models"
	"github.com/taigrr/minmatrix/pkg/render"
	"github.com/taigrr/minmatrix/pkg/scenes"
)

var (
	sceneName     = flag.String("scene", "orbit", "Scene to play: "+strings.Join(scenes.Names(), ", "))
	targetFPS     = flag.Int("fps", 30, "Target FPS")
	bgColor       = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	modelPath     = flag.String("model", "", "GLB model drawn in place of the built-in geometry")
	snapshotPath  = flag.String("snapshot", "", "Render headless and write the last frame to this PNG")
	snapshotScale = flag.Int("snapshot-scale", 4, "Integer upscale factor for -snapshot")
	frames        = flag.Int("frames", 1, "Frames to render before writing -snapshot")
	width         = flag.Int("width", 160, "Framebuffer width for -snapshot")
	height        = flag.Int("height", 96, "Framebuffer height for -snapshot")
	showAxes      = flag.Bool("axes", false, "Overlay the world axes")
	showGrid      = flag.Bool("grid", false, "Overlay the XZ ground grid")
	fov           = flag.Float64("fov", 90, "Vertical field of view in degrees")
	verbose       = flag.Bool("v", false, "Log diagnostics to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "minmatrix - WebGL matrix tutorial scenes in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: minmatrix [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle axes\n")
		fmt.Fprintf(os.Stderr, "  G           - Toggle grid\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset spin\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	bg, err := parseColor(*bgColor)
	if err != nil {
		return err
	}

	var mesh *models.Mesh
	if *modelPath != "" {
		mesh, err = models.LoadGLB(*modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		render.Logger().Info("model loaded",
			"name", mesh.Name,
			"vertices", mesh.VertexCount(),
			"triangles", mesh.TriangleCount(),
		)
	}

	scene, err := scenes.ByName(*sceneName, mesh)
	if err != nil {
		return err
	}
	render.Logger().Info("scene selected", "scene", scene.Name(), "eye", scene.Eye())

	player := scenes.NewPlayer(scene, *targetFPS)
	player.Background = bg
	player.Axes = *showAxes
	player.Grid = *showGrid
	player.Camera.SetFOV(*fov)

	if *snapshotPath != "" {
		return snapshot(player, *snapshotPath)
	}
	return interactive(player)
}

// parseColor reads an "R,G,B" triple.
func parseColor(s string) (render.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("parse -bg %q: %w", s, err)
	}
	return render.RGB(r, g, b), nil
}

// snapshot renders the requested number of frames off-screen and saves the
// last one.
func snapshot(player *scenes.Player, path string) error {
	if *width <= 0 || *height <= 0 || *frames <= 0 {
		return fmt.Errorf("snapshot needs positive -width, -height and -frames")
	}

	fb := render.NewFramebuffer(*width, *height)
	rasterizer := render.NewRasterizer(fb)
	player.Resize(fb.Width, fb.Height)

	for range *frames {
		player.Step(fb, rasterizer)
	}

	if err := fb.SavePNG(path, *snapshotScale); err != nil {
		return err
	}
	render.Logger().Info("snapshot written", "path", path, "frames", player.Frame())
	return nil
}

// view holds everything the event goroutine and the render loop share.
type view struct {
	mu           sync.Mutex
	width        int
	height       int
	termRenderer *render.TerminalRenderer
	fb           *render.Framebuffer
	rasterizer   *render.Rasterizer
	showHUD      bool
}

func (v *view) resize(term *uv.Terminal, player *scenes.Player, width, height int) {
	v.width, v.height = width, height
	v.termRenderer = render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := v.termRenderer.FramebufferSize()
	v.fb = render.NewFramebuffer(fbWidth, fbHeight)
	v.rasterizer = render.NewRasterizer(v.fb)
	player.Resize(fbWidth, fbHeight)
	render.Logger().Debug("resized", "cols", width, "rows", height, "fb", fmt.Sprintf("%dx%d", fbWidth, fbHeight))
}

func interactive(player *scenes.Player) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	v := &view{}
	v.resize(term, player, width, height)
	hud := NewHUD(player.Scene.Name())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	const nudge = 0.02 // Radians per frame added by a key press

	go func() {
		for ev := range term.Events() {
			v.mu.Lock()
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				term.Resize(ev.Width, ev.Height)
				v.resize(term, player, ev.Width, ev.Height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					cancel()
				case ev.MatchString("space"):
					player.Spin.Impulse(
						(rand.Float64()-0.5)*0.3,
						(rand.Float64()-0.5)*0.3,
					)
				case ev.MatchString("w", "up"):
					player.Spin.Impulse(0, -nudge)
				case ev.MatchString("s", "down"):
					player.Spin.Impulse(0, nudge)
				case ev.MatchString("a", "left"):
					player.Spin.Impulse(-nudge, 0)
				case ev.MatchString("d", "right"):
					player.Spin.Impulse(nudge, 0)
				case ev.MatchString("x"):
					player.Axes = !player.Axes
				case ev.MatchString("g"):
					player.Grid = !player.Grid
				case ev.MatchString("r"):
					player.Spin.Reset()
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					v.showHUD = !v.showHUD
				}
			}
			v.mu.Unlock()
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(max(*targetFPS, 1))

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		v.mu.Lock()
		player.Step(v.fb, v.rasterizer)
		v.termRenderer.Render(v.fb)
		err := v.termRenderer.Flush()
		triangles := v.rasterizer.Stats.Triangles
		w, h, showHUD := v.width, v.height, v.showHUD
		v.mu.Unlock()

		if err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (FPS keeps counting while hidden)
		hud.UpdateFPS()
		hud.Render(w, h, triangles, showHUD)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
