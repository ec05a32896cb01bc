package render

import (
	"image"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows: ▀ with fg = top
// pixel and bg = bottom pixel.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, topY)),
					Bg: rgbaToColor(fb.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// Display is a screen that can flush its cells to the terminal.
// *uv.Terminal satisfies it.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalRenderer presents a framebuffer on a terminal screen.
type TerminalRenderer struct {
	screen Display
	cols   int
	rows   int
}

// NewTerminalRenderer creates a renderer for a cols x rows terminal.
func NewTerminalRenderer(screen Display, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, cols: cols, rows: rows}
}

// FramebufferSize returns the framebuffer dimensions that fill the
// terminal: one pixel per column, two per row.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Render copies the framebuffer into the screen's cells.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.screen, uv.Rectangle(image.Rect(0, 0, t.cols, t.rows)))
}

// Flush writes pending cells to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.screen.Display()
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorGreen = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RGBAf creates a color from components in the 0..1 range, the way WebGL
// vertex colours are specified. Values outside the range are clamped.
func RGBAf(r, g, b, a float64) color.RGBA {
	return color.RGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: unit8(a)}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
