package canvas

import (
	"testing"
	"testing/quick"

	"github.com/lucasb-eyer/go-colorful"

	"waterbar/internal/geometry"
)

// colour builds an opaque colour from three bytes.
func colour(rgb [3]uint8) colorful.Color {
	return colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
}

// TestTopmostLayerColourWins verifies that after a series of overlapping
// fills every cell shows the colour of the last fill that reached it.
func TestTopmostLayerColourWins(t *testing.T) {
	property := func(fills [][3]uint8, cols uint8) bool {
		if len(fills) == 0 {
			return true
		}
		width := int(cols%20)*2 + 2
		c := New(width, 8)

		// each fill covers a shrinking prefix of the columns, so the cell at
		// column cx is topped by the last fill whose prefix reaches it
		top := make([]int, c.CharWidth())
		for i := range top {
			top[i] = -1
		}
		for i, rgb := range fills {
			right := width - (i*2)%width
			c.FillRect(geometry.Rect{Right: float64(right), Bottom: 8}, colour(rgb))
			for cx := 0; cx*2 < right; cx++ {
				top[cx] = i
			}
		}

		for cx := 0; cx < c.CharWidth(); cx++ {
			for cy := 0; cy < c.CharHeight(); cy++ {
				g, ok := c.Cell(cx, cy)
				if !ok || g.Color != colour(fills[top[cx]]) {
					return false
				}
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestColorAtRoundTrip verifies that a set pixel reports the colour it was
// painted with.
func TestColorAtRoundTrip(t *testing.T) {
	property := func(x, y uint8, rgb [3]uint8) bool {
		c := New(64, 64)
		px, py := int(x%64), int(y%64)

		c.Set(px, py, colour(rgb))
		got, ok := c.ColorAt(px, py)
		return ok && got == colour(rgb)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestResetForgetsEverything verifies that Reset clears pixels and labels
// and starts painting on the first layer again.
func TestResetForgetsEverything(t *testing.T) {
	property := func(fills uint8, text string, x uint8) bool {
		c := New(40, 8)
		for i := 0; i < int(fills%8); i++ {
			fillAll(c, white)
		}
		c.Label(int(x%40), 0, text, white)

		c.Reset()

		if c.layer != 1 || len(c.labels) != 0 {
			return false
		}
		for cy := 0; cy < c.CharHeight(); cy++ {
			for cx := 0; cx < c.CharWidth(); cx++ {
				if _, ok := c.Cell(cx, cy); ok {
					return false
				}
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestLabelCoversBraille verifies that narrow label runes replace the braille
// of the cells they cover and leave the others alone.
func TestLabelCoversBraille(t *testing.T) {
	property := func(raw []byte, rgb [3]uint8) bool {
		// printable ASCII, one column per rune
		text := make([]rune, 0, 8)
		for _, b := range raw {
			if len(text) == 8 {
				break
			}
			text = append(text, rune('!'+b%94))
		}
		if len(text) == 0 {
			return true
		}

		c := New(40, 4)
		fillAll(c, white)
		c.Label(20, 0, string(text), colour(rgb))

		start := 10 - len(text)/2
		for cx := 0; cx < c.CharWidth(); cx++ {
			g, ok := c.Cell(cx, 0)
			if !ok {
				return false
			}
			i := cx - start
			if i >= 0 && i < len(text) {
				if !g.Label || g.Rune != text[i] || g.Color != colour(rgb) || g.Width != 1 {
					return false
				}
			} else if g.Label || g.Rune != '⣿' || g.Color != white {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
