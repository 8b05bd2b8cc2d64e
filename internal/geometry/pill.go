// Package geometry computes the primitives that make up the pill-shaped bar.
// Angles are in degrees; 0° points along +x and positive sweeps run clockwise
// on a y-down surface.
package geometry

import "math"

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Arc is an elliptical arc inscribed in Oval.
// With UseCenter the arc closes through the oval centre (a pie wedge),
// otherwise it closes along the chord between its endpoints.
type Arc struct {
	Oval      Rect
	Start     float64
	Sweep     float64
	UseCenter bool
}

// Circle is a circle centred at (X, Y).
type Circle struct {
	X, Y, R float64
}

// Shape is a composite of arcs and rectangles drawn with one paint.
type Shape struct {
	Arcs  []Arc
	Rects []Rect
}

// Empty reports whether the shape covers no area.
func (s Shape) Empty() bool {
	for _, a := range s.Arcs {
		if a.Sweep > 0 {
			return false
		}
	}
	for _, r := range s.Rects {
		if r.Width() > 0 && r.Height() > 0 {
			return false
		}
	}
	return true
}

// extent returns the rightmost x coordinate covered by the shape.
func (s Shape) extent() float64 {
	extent := 0.0
	for _, a := range s.Arcs {
		if a.Sweep <= 0 {
			continue
		}
		extent = math.Max(extent, arcExtent(a))
	}
	for _, r := range s.Rects {
		if r.Width() > 0 {
			extent = math.Max(extent, r.Right)
		}
	}
	return extent
}

// arcExtent returns the rightmost x reached by an arc on its oval.
func arcExtent(a Arc) float64 {
	cx := (a.Oval.Left + a.Oval.Right) / 2
	rx := a.Oval.Width() / 2
	if a.Sweep >= 360 || AngleWithin(0, a.Start, a.Sweep) {
		return cx + rx
	}
	end := a.Start + a.Sweep
	x1 := cx + rx*math.Cos(toRadians(a.Start))
	x2 := cx + rx*math.Cos(toRadians(end))
	right := math.Max(x1, x2)
	if a.UseCenter {
		right = math.Max(right, cx)
	}
	return right
}

// Translate returns the shape moved by (dx, dy).
func (s Shape) Translate(dx, dy float64) Shape {
	out := Shape{
		Arcs:  make([]Arc, len(s.Arcs)),
		Rects: make([]Rect, len(s.Rects)),
	}
	for i, a := range s.Arcs {
		a.Oval = a.Oval.Translate(dx, dy)
		out.Arcs[i] = a
	}
	for i, r := range s.Rects {
		out.Rects[i] = r.Translate(dx, dy)
	}
	return out
}

// PillOutline returns the full bar outline for a surface of w×h pixels.
func PillOutline(w, h float64) Shape {
	return Shape{
		Arcs:  []Arc{leftCap(h), rightCap(w, h)},
		Rects: []Rect{{Left: h / 2, Top: 0, Right: w - h/2, Bottom: h}},
	}
}

// FilledToProgress returns the part of the pill covered by progress percent,
// filled from the left.
func FilledToProgress(progress int, w, h float64) Shape {
	if w <= 0 || h <= 0 || progress <= 0 {
		return Shape{}
	}
	drawWidth := w / 100 * float64(progress)
	radius := h / 2

	switch {
	case drawWidth <= radius:
		v := toDegrees(math.Acos((radius - drawWidth) / radius))
		return Shape{Arcs: []Arc{{
			Oval:  Rect{Left: 0, Top: 0, Right: h, Bottom: h},
			Start: 180 - v,
			Sweep: 2 * v,
		}}}
	case drawWidth <= w-radius:
		return Shape{
			Arcs:  []Arc{leftCap(h)},
			Rects: []Rect{{Left: radius, Top: 0, Right: drawWidth, Bottom: h}},
		}
	default:
		return PillOutline(w, h)
	}
}

func leftCap(h float64) Arc {
	return Arc{Oval: Rect{Left: 0, Top: 0, Right: h, Bottom: h}, Start: 90, Sweep: 180, UseCenter: true}
}

func rightCap(w, h float64) Arc {
	return Arc{Oval: Rect{Left: w - h, Top: 0, Right: w, Bottom: h}, Start: -90, Sweep: 180, UseCenter: true}
}

// RightCapOval is the bounding box of the right rounded end.
func RightCapOval(w, h float64) Rect {
	return Rect{Left: w - h, Top: 0, Right: w, Bottom: h}
}

// ContainsPoint reports whether a circle of radius centred at (x, y) stays
// inside the bar. y is measured from the bar's horizontal centre line; only
// the left rounded end can clip a circle whose centre is inside the bar.
func ContainsPoint(x, y, radius, h float64) bool {
	if x < 0 || math.Abs(y) > h/2 {
		return false
	}
	if x > h/2 {
		return true
	}
	return math.Hypot(h/2-x, y)+radius <= h/2
}

// NormalizeAngle maps degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleWithin reports whether deg lies on the sweep starting at start.
func AngleWithin(deg, start, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	return NormalizeAngle(deg-start) <= sweep
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
