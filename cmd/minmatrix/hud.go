package main

import (
	"fmt"
	"time"
)

// HUD draws a one-line status bar over the top terminal row.
type HUD struct {
	scene     string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD(scene string) *HUD {
	return &HUD{
		scene:   scene,
		fpsTime: time.Now(),
	}
}

func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *HUD) Render(width, height, triangles int, visible bool) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	if !visible || height < 1 {
		return
	}
	fmt.Print(moveTo(1, 1) + clearLine)

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(h.scene)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, h.scene, reset)

	trisCol := max(width-12, 1)
	fmt.Printf("%s%s%s%s %d tris %s", moveTo(1, trisCol), bgBlack, fgCyan, bold, triangles, reset)
}
