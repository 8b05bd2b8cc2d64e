package surface

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"waterbar/internal/canvas"
	"waterbar/internal/loop"
)

// Terminal hosts frames on a full-screen tcell screen. One cell shows a
// 2x4 block of pixels.
type Terminal struct {
	screen tcell.Screen
	canvas *canvas.Canvas
	closed atomic.Bool
}

// OpenTerminal initialises the controlling terminal.
func OpenTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return newTerminal(screen), nil
}

// newTerminal wraps an initialised screen.
func newTerminal(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen}
}

// PixelSize returns the screen size in pixels.
func (t *Terminal) PixelSize() (width, height int) {
	cols, rows := t.screen.Size()
	return cols * 2, rows * 4
}

// Poll forwards screen events until the screen is finalised. onResize gets
// the new size in pixels; onQuit fires on Escape, Ctrl-C or q.
func (t *Terminal) Poll(onResize func(width, height int), onQuit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return // Fini was called
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			cols, rows := ev.Size()
			if onResize != nil {
				onResize(cols*2, rows*4)
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				if onQuit != nil {
					onQuit()
				}
			}
		}
	}
}

// Acquire returns a cleared canvas of width×height pixels, or false once the
// screen is being torn down.
func (t *Terminal) Acquire(width, height int) (loop.Target, bool) {
	if t.closed.Load() || width <= 0 || height <= 0 {
		return nil, false
	}
	if t.canvas == nil || t.canvas.Width() < width || t.canvas.Height() < height ||
		t.canvas.Width() > width+1 || t.canvas.Height() > height+3 {
		t.canvas = canvas.New(width, height)
	}
	t.canvas.Reset()
	return t.canvas, true
}

// Present copies the canvas onto the screen and shows it.
func (t *Terminal) Present(target loop.Target) error {
	c, ok := target.(*canvas.Canvas)
	if !ok || c != t.canvas {
		return errForeignTarget
	}
	if t.closed.Load() {
		return nil
	}

	t.screen.Clear()
	for cy := 0; cy < c.CharHeight(); cy++ {
		for cx := 0; cx < c.CharWidth(); cx++ {
			g, ok := c.Cell(cx, cy)
			if !ok || g.Width == 0 {
				continue
			}
			cr, cg, cb := g.Color.Clamped().RGB255()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
			if g.Label {
				style = style.Bold(true)
			}
			t.screen.SetContent(cx, cy, g.Rune, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Close finalises the screen. Acquire reports unavailable from then on and
// Poll returns.
func (t *Terminal) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	t.screen.Fini()
	return nil
}
