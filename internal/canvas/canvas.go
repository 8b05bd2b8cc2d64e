// Package canvas provides a braille-based drawing canvas for terminal graphics.
// Each braille character covers a 2x4 pixel area; every lit pixel remembers
// the colour that last painted it.
package canvas

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// brailleBase is the Unicode code point for an empty braille character.
const brailleBase = '\u2800'

// pixelToBit maps (x, y) within a 2x4 braille cell to the bit value.
// x: 0-1 (column), y: 0-3 (row)
//
// Braille dot layout:
//
//	┌───┬───┐
//	│ 1 │ 4 │  Row 0
//	├───┼───┤
//	│ 2 │ 5 │  Row 1
//	├───┼───┤
//	│ 3 │ 6 │  Row 2
//	├───┼───┤
//	│ 7 │ 8 │  Row 3
//	└───┴───┘
//	Col 0  Col 1
var pixelToBit = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // column 0: dots 1, 2, 3, 7
	{0x08, 0x10, 0x20, 0x80}, // column 1: dots 4, 5, 6, 8
}

// pixel is one dot on the canvas. layer is the paint sequence number of the
// command that last lit it, zero when off.
type pixel struct {
	layer int
	color colorful.Color
}

// label is text placed over whole cells. start is the first cell column;
// wide runes take two columns.
type label struct {
	start, cy int
	text      []rune
	color     colorful.Color
}

// Glyph is what a terminal shows in one cell.
type Glyph struct {
	Rune  rune
	Color colorful.Color
	Label bool // text rather than braille
	Width int  // display columns; 0 for the second column of a wide rune
}

// Canvas represents a drawable braille canvas.
// Coordinates are in pixels, where each braille character represents a 2x4 pixel area.
type Canvas struct {
	width  int       // width in pixels
	height int       // height in pixels
	pixels [][]pixel // pixel data [y][x]
	labels []label
	layer  int // paint sequence of the next fill
}

// New creates a new canvas with the given pixel dimensions.
// Width and height are automatically rounded up to the nearest braille cell boundary
// (width to multiple of 2, height to multiple of 4).
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	// Round up to braille cell boundaries
	if width%2 != 0 {
		width++
	}
	if height%4 != 0 {
		height += 4 - (height % 4)
	}

	pixels := make([][]pixel, height)
	for y := range pixels {
		pixels[y] = make([]pixel, width)
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: pixels,
		layer:  1,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// CharWidth returns the canvas width in braille characters.
func (c *Canvas) CharWidth() int {
	return c.width / 2
}

// CharHeight returns the canvas height in braille characters (rows).
func (c *Canvas) CharHeight() int {
	return c.height / 4
}

// inBounds checks if the given pixel coordinates are within the canvas.
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set lights the pixel at (x, y) with colour col on the current layer.
func (c *Canvas) Set(x, y int, col colorful.Color) {
	if c.inBounds(x, y) {
		c.pixels[y][x] = pixel{layer: c.layer, color: col}
	}
}

// Clear turns off the pixel at (x, y).
func (c *Canvas) Clear(x, y int) {
	if c.inBounds(x, y) {
		c.pixels[y][x] = pixel{}
	}
}

// Get returns the pixel state at (x, y).
// Returns false for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) bool {
	if !c.inBounds(x, y) {
		return false
	}
	return c.pixels[y][x].layer > 0
}

// ColorAt returns the colour of a lit pixel.
func (c *Canvas) ColorAt(x, y int) (colorful.Color, bool) {
	if !c.Get(x, y) {
		return colorful.Color{}, false
	}
	return c.pixels[y][x].color, true
}

// Reset turns off all pixels and drops every label.
func (c *Canvas) Reset() {
	for y := range c.pixels {
		for x := range c.pixels[y] {
			c.pixels[y][x] = pixel{}
		}
	}
	c.labels = c.labels[:0]
	c.layer = 1
}

// Label writes text centred, by display width, on pixel column x in the cell
// row holding pixel row y. Labels sit above every pixel.
func (c *Canvas) Label(x, y int, text string, col colorful.Color) {
	if text == "" || !c.inBounds(max(x, 0), y) {
		return
	}
	start := x/2 - runewidth.StringWidth(text)/2
	c.labels = append(c.labels, label{start: start, cy: y / 4, text: []rune(text), color: col})
}

// labelAt returns the label glyph covering cell (cx, cy), the last label
// wins. A wide rune that would not fit in the row is left out.
func (c *Canvas) labelAt(cx, cy int) (Glyph, bool) {
	for i := len(c.labels) - 1; i >= 0; i-- {
		l := c.labels[i]
		if l.cy != cy || cx < l.start {
			continue
		}
		col := l.start
		for _, r := range l.text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col > cx {
				break
			}
			if col >= 0 && col+w <= c.CharWidth() {
				switch cx - col {
				case 0:
					return Glyph{Rune: r, Color: l.color, Label: true, Width: w}, true
				case 1:
					if w == 2 {
						return Glyph{Color: l.color, Label: true}, true
					}
				}
			}
			col += w
		}
	}
	return Glyph{}, false
}

// charAt returns the braille character for the cell at character position (cx, cy)
// and the colour of its topmost lit pixel.
func (c *Canvas) charAt(cx, cy int) (rune, colorful.Color, bool) {
	// Convert character position to pixel position
	px := cx * 2
	py := cy * 4

	var char rune = brailleBase
	var top pixel

	// Check each pixel in the 2x4 braille cell
	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 4; dy++ {
			if !c.Get(px+dx, py+dy) {
				continue
			}
			char += pixelToBit[dx][dy]
			if p := c.pixels[py+dy][px+dx]; p.layer > top.layer {
				top = p
			}
		}
	}

	return char, top.color, top.layer > 0
}

// Cell returns what a terminal should show at character position (cx, cy):
// a label glyph if one covers the cell, otherwise the braille character.
// ok is false for an empty cell.
func (c *Canvas) Cell(cx, cy int) (Glyph, bool) {
	if g, ok := c.labelAt(cx, cy); ok {
		return g, true
	}
	r, col, ok := c.charAt(cx, cy)
	return Glyph{Rune: r, Color: col, Width: 1}, ok
}

// Row renders a single row of characters at the given character row index.
func (c *Canvas) Row(cy int) string {
	if cy < 0 || cy >= c.CharHeight() {
		return ""
	}

	var sb strings.Builder
	sb.Grow(c.CharWidth())

	for cx := 0; cx < c.CharWidth(); cx++ {
		g, ok := c.Cell(cx, cy)
		switch {
		case !ok:
			sb.WriteRune(brailleBase)
		case g.Width > 0:
			sb.WriteRune(g.Rune)
		}
	}

	return sb.String()
}

// String renders the entire canvas as a multi-line string without colour.
func (c *Canvas) String() string {
	var sb strings.Builder
	charHeight := c.CharHeight()

	for cy := 0; cy < charHeight; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.Row(cy))
	}

	return sb.String()
}
