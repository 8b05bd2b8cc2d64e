package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"waterbar/internal/draw"
	"waterbar/internal/geometry"
)

// Paint rasterises a frame. Each command is filled on its own layer so later
// commands cover earlier ones.
func (c *Canvas) Paint(list draw.List) {
	for _, cmd := range list {
		switch cmd.Op {
		case draw.OpArc:
			c.FillArc(cmd.Arc, cmd.Color)
		case draw.OpRect:
			c.FillRect(cmd.Rect, cmd.Color)
		case draw.OpOval:
			c.FillOval(cmd.Rect, cmd.Color)
		case draw.OpCircle:
			c.FillCircle(cmd.Circle, cmd.Color)
		case draw.OpText:
			t := cmd.Text
			// centre the label cell row on the glyph body, not the baseline
			c.Label(int(t.X), int(t.Y-t.Size/2), t.Value, cmd.Color)
		}
	}
}

// fill lights every pixel in the bounding box whose centre satisfies inside,
// then moves to the next layer.
func (c *Canvas) fill(bounds geometry.Rect, col colorful.Color, inside func(x, y float64) bool) {
	x0 := max(int(math.Floor(bounds.Left)), 0)
	y0 := max(int(math.Floor(bounds.Top)), 0)
	x1 := min(int(math.Ceil(bounds.Right)), c.width)
	y1 := min(int(math.Ceil(bounds.Bottom)), c.height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				c.Set(x, y, col)
			}
		}
	}
	c.layer++
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(r geometry.Rect, col colorful.Color) {
	c.fill(r, col, func(x, y float64) bool {
		return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
	})
}

// FillOval fills the ellipse inscribed in r.
func (c *Canvas) FillOval(r geometry.Rect, col colorful.Color) {
	c.fill(r, col, ovalTest(r))
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(ci geometry.Circle, col colorful.Color) {
	bounds := geometry.Rect{Left: ci.X - ci.R, Top: ci.Y - ci.R, Right: ci.X + ci.R, Bottom: ci.Y + ci.R}
	c.fill(bounds, col, func(x, y float64) bool {
		return math.Hypot(x-ci.X, y-ci.Y) <= ci.R
	})
}

// FillArc fills an arc of the ellipse inscribed in a.Oval, closed either
// through the centre or along its chord.
func (c *Canvas) FillArc(a geometry.Arc, col colorful.Color) {
	if a.Sweep <= 0 || a.Oval.Width() <= 0 || a.Oval.Height() <= 0 {
		return
	}

	inOval := ovalTest(a.Oval)
	cx := (a.Oval.Left + a.Oval.Right) / 2
	cy := (a.Oval.Top + a.Oval.Bottom) / 2
	rx, ry := a.Oval.Width()/2, a.Oval.Height()/2

	angle := func(x, y float64) float64 {
		// angle on the unit circle the ellipse maps to
		return math.Atan2((y-cy)/ry, (x-cx)/rx) * 180 / math.Pi
	}

	if a.UseCenter || a.Sweep >= 360 {
		c.fill(a.Oval, col, func(x, y float64) bool {
			return inOval(x, y) && geometry.AngleWithin(angle(x, y), a.Start, a.Sweep)
		})
		return
	}

	// chord from start to end; the arc side is where the sweep midpoint lies
	point := func(deg float64) (float64, float64) {
		rad := deg * math.Pi / 180
		return cx + rx*math.Cos(rad), cy + ry*math.Sin(rad)
	}
	sx, sy := point(a.Start)
	ex, ey := point(a.Start + a.Sweep)
	mx, my := point(a.Start + a.Sweep/2)
	side := func(x, y float64) float64 {
		return (ex-sx)*(y-sy) - (ey-sy)*(x-sx)
	}
	arcSide := side(mx, my)

	c.fill(a.Oval, col, func(x, y float64) bool {
		if !inOval(x, y) {
			return false
		}
		onArcSide := side(x, y)*arcSide >= 0
		if a.Sweep <= 180 {
			return onArcSide
		}
		return onArcSide || geometry.AngleWithin(angle(x, y), a.Start, a.Sweep)
	})
}

func ovalTest(r geometry.Rect) func(x, y float64) bool {
	cx := (r.Left + r.Right) / 2
	cy := (r.Top + r.Bottom) / 2
	rx, ry := r.Width()/2, r.Height()/2
	return func(x, y float64) bool {
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1
	}
}
