// Package surface hosts frames on a terminal. ANSI redraws in place on any
// writer; Terminal drives a full tcell screen that follows resizes.
package surface

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"waterbar/internal/canvas"
	"waterbar/internal/loop"
)

// ANSI escape codes for cursor visibility, color reset, and line clearing
const (
	ansiEscape      = "\033["
	ansiHideCursor  = ansiEscape + "?25l"
	ansiShowCursor  = ansiEscape + "?25h"
	ansiResetColor  = ansiEscape + "0m"
	ansiClearLine   = ansiEscape + "K"
	ansiTrueColorFg = ansiEscape + "38;2;" // followed by r;g;bm
	ansi256ColorFg  = ansiEscape + "38;5;" // followed by Nm
	carriageReturn  = "\r"
)

// errForeignTarget is returned when a target from another surface is presented.
var errForeignTarget = errors.New("surface: target was not acquired from this surface")

// ANSI renders frames as coloured braille text, overwriting the previous frame.
type ANSI struct {
	w         io.Writer
	trueColor bool
	label     lipgloss.Style
	canvas    *canvas.Canvas
	lines     int // rows written by the previous frame
	closed    bool
}

// NewANSI creates a surface writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{
		w:         w,
		trueColor: supportsTrueColor(),
		label:     lipgloss.NewStyle().Bold(true),
	}
}

// supportsTrueColor checks if the terminal supports 24-bit true color.
// macOS Terminal.app does not support true color, but iTerm2 and other
// modern terminals do. We detect this via the COLORTERM environment variable.
func supportsTrueColor() bool {
	colorterm := os.Getenv("COLORTERM")
	// COLORTERM=truecolor or COLORTERM=24bit indicates true color support
	return strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit")
}

// Acquire returns a cleared canvas of width×height pixels. It reports false
// once the surface is closed or when there is nothing to draw on.
func (a *ANSI) Acquire(width, height int) (loop.Target, bool) {
	if a.closed || width <= 0 || height <= 0 {
		return nil, false
	}
	if a.canvas == nil || a.canvas.Width() < width || a.canvas.Height() < height ||
		a.canvas.Width() > width+1 || a.canvas.Height() > height+3 {
		a.canvas = canvas.New(width, height)
	}
	a.canvas.Reset()
	return a.canvas, true
}

// Present writes the painted canvas over the previous frame.
func (a *ANSI) Present(t loop.Target) error {
	c, ok := t.(*canvas.Canvas)
	if !ok || c != a.canvas {
		return errForeignTarget
	}

	var sb strings.Builder
	if a.lines == 0 {
		sb.WriteString(ansiHideCursor)
	} else {
		// back to the first row of the previous frame
		fmt.Fprintf(&sb, "%s%dA", ansiEscape, a.lines)
	}
	for cy := 0; cy < c.CharHeight(); cy++ {
		sb.WriteString(carriageReturn)
		a.writeRow(&sb, c, cy)
		sb.WriteString(ansiResetColor + ansiClearLine + "\n")
	}
	a.lines = c.CharHeight()

	_, err := io.WriteString(a.w, sb.String())
	return err
}

func (a *ANSI) writeRow(sb *strings.Builder, c *canvas.Canvas, cy int) {
	var current string
	for cx := 0; cx < c.CharWidth(); cx++ {
		g, ok := c.Cell(cx, cy)
		switch {
		case !ok:
			if current != "" {
				sb.WriteString(ansiResetColor)
				current = ""
			}
			sb.WriteByte(' ')
		case g.Width == 0:
			// covered by the wide rune before it
		case g.Label:
			sb.WriteString(a.label.Foreground(lipgloss.Color(g.Color.Clamped().Hex())).Render(string(g.Rune)))
			current = ""
		default:
			if code := a.colorCode(g.Color); code != current {
				sb.WriteString(code)
				current = code
			}
			sb.WriteRune(g.Rune)
		}
	}
}

// colorCode returns the ANSI escape sequence selecting col as foreground.
func (a *ANSI) colorCode(col colorful.Color) string {
	r, g, b := col.Clamped().RGB255()
	if a.trueColor {
		// ANSI 24-bit true color foreground (ESC[38;2;r;g;bm)
		return fmt.Sprintf("%s%d;%d;%dm", ansiTrueColorFg, r, g, b)
	}
	// ANSI 256-color foreground (ESC[38;5;Nm)
	return fmt.Sprintf("%s%dm", ansi256ColorFg, rgbTo256(int(r), int(g), int(b)))
}

// rgbTo256 converts RGB values (0-255) to an ANSI 256-color palette index
// using the 6x6x6 color cube (indices 16-231).
func rgbTo256(r, g, b int) int {
	// Scale 0-255 to 0-5 with rounding: (v*5+127)/255
	r6 := (r*5 + 127) / 255
	g6 := (g*5 + 127) / 255
	b6 := (b*5 + 127) / 255
	return 16 + 36*r6 + 6*g6 + b6 // 6x6x6 cube starts at index 16
}

// Close stops accepting frames and restores the cursor.
func (a *ANSI) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	_, err := io.WriteString(a.w, ansiResetColor+ansiShowCursor)
	return err
}
