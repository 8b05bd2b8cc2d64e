package canvas

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterbar/internal/draw"
	"waterbar/internal/geometry"
)

var (
	pink = colorful.Color{R: 1, G: 0.2, B: 0.4}
	pale = colorful.Color{R: 1, G: 0.8, B: 1}
)

func TestPaintPill(t *testing.T) {
	c := New(80, 20)
	var list draw.List
	list.Shape(geometry.PillOutline(80, 20), pale)
	c.Paint(list)

	// centre and the middle of both caps are lit
	assert.True(t, c.Get(40, 10))
	assert.True(t, c.Get(3, 10))
	assert.True(t, c.Get(76, 10))

	// the square corners outside the caps stay dark
	assert.False(t, c.Get(0, 0))
	assert.False(t, c.Get(79, 0))
	assert.False(t, c.Get(0, 19))
	assert.False(t, c.Get(79, 19))

	col, ok := c.ColorAt(40, 10)
	require.True(t, ok)
	assert.Equal(t, pale, col)
}

func TestPaintLaterCommandsCoverEarlier(t *testing.T) {
	c := New(80, 20)
	var list draw.List
	list.Shape(geometry.PillOutline(80, 20), pale)
	list.Shape(geometry.FilledToProgress(50, 80, 20), pink)
	c.Paint(list)

	left, _ := c.ColorAt(20, 10)
	right, _ := c.ColorAt(60, 10)
	assert.Equal(t, pink, left)
	assert.Equal(t, pale, right)

	// a cell straddling the fill edge takes the topmost colour
	g, ok := c.Cell(19, 2)
	require.True(t, ok)
	assert.Equal(t, pink, g.Color)
}

func TestFillArcChord(t *testing.T) {
	c := New(20, 20)
	// the left 5px of a 20px circle, closed along its chord
	var list draw.List
	list.Shape(geometry.FilledToProgress(25, 20, 20), pink)
	require.Equal(t, 1, list.Count(draw.OpArc))
	c.Paint(list)

	assert.True(t, c.Get(2, 10))
	assert.False(t, c.Get(6, 10))
	assert.False(t, c.Get(10, 10))
	assert.False(t, c.Get(2, 1))
}

func TestFillArcPie(t *testing.T) {
	c := New(20, 20)
	c.FillArc(geometry.Arc{
		Oval:      geometry.Rect{Right: 20, Bottom: 20},
		Start:     -90,
		Sweep:     180,
		UseCenter: true,
	}, pink)

	assert.True(t, c.Get(15, 10))
	assert.False(t, c.Get(4, 10))
}

func TestFillCircleClipsToCanvas(t *testing.T) {
	c := New(8, 8)
	c.FillCircle(geometry.Circle{X: 0, Y: 0, R: 3}, pink)

	assert.True(t, c.Get(0, 0))
	assert.True(t, c.Get(1, 1))
	assert.False(t, c.Get(3, 3))
}

func TestLabelOverridesBraille(t *testing.T) {
	c := New(20, 8)
	var list draw.List
	list.Rect(geometry.Rect{Right: 20, Bottom: 8}, pale)
	list.Text(draw.Text{X: 10, Y: 5, Size: 4, Value: "50%"}, pink)
	c.Paint(list)

	// the baseline falls in cell row 1, the glyph centre in row 0
	assert.Equal(t, "⣿⣿⣿⣿5", string([]rune(c.Row(0))[:5]))
	assert.Equal(t, "50%", string([]rune(c.Row(0))[4:7]))

	g, ok := c.Cell(5, 0)
	require.True(t, ok)
	assert.Equal(t, Glyph{Rune: '0', Color: pink, Label: true, Width: 1}, g)

	c.Reset()
	_, ok = c.Cell(5, 0)
	assert.False(t, ok)
}

func TestWideLabelCentredByDisplayWidth(t *testing.T) {
	c := New(20, 8)
	var list draw.List
	list.Rect(geometry.Rect{Right: 20, Bottom: 8}, pale)
	list.Text(draw.Text{X: 10, Y: 5, Size: 4, Value: "下载"}, pink)
	c.Paint(list)

	// 4 columns wide, centred on column 5: 下 at 3, 载 at 5
	tests := []struct {
		cx   int
		want Glyph
	}{
		{3, Glyph{Rune: '下', Color: pink, Label: true, Width: 2}},
		{4, Glyph{Color: pink, Label: true}},
		{5, Glyph{Rune: '载', Color: pink, Label: true, Width: 2}},
		{6, Glyph{Color: pink, Label: true}},
	}
	for _, tt := range tests {
		g, ok := c.Cell(tt.cx, 0)
		require.True(t, ok, "cell %d", tt.cx)
		assert.Equal(t, tt.want, g, "cell %d", tt.cx)
	}

	g, ok := c.Cell(7, 0)
	require.True(t, ok)
	assert.False(t, g.Label)

	assert.Equal(t, 10, runewidth.StringWidth(c.Row(0)))
	assert.Equal(t, "⣿⣿⣿下载⣿⣿⣿", c.Row(0))
}

func TestWideLabelClippedAtRowEnd(t *testing.T) {
	c := New(6, 4)
	c.Label(5, 0, "下载", pink)

	// 下 takes columns 0 and 1; 载 would need 2 and 3 of a 3-column row
	assert.Equal(t, 3, runewidth.StringWidth(c.Row(0)))
	assert.Equal(t, "下⠀", c.Row(0))
	_, ok := c.Cell(2, 0)
	assert.False(t, ok)
}
