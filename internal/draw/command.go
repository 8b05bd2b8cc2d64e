// Package draw describes one frame as an ordered list of paint commands.
// Hosts rasterise the list; later commands paint over earlier ones.
package draw

import (
	"github.com/lucasb-eyer/go-colorful"

	"waterbar/internal/geometry"
)

// Op identifies the primitive a Command paints.
type Op int

const (
	OpArc Op = iota
	OpRect
	OpOval
	OpCircle
	OpText
)

// Text is a horizontally centred label whose baseline sits at Y.
type Text struct {
	X, Y  float64
	Size  float64
	Value string
}

// Command is a single filled primitive. Only the field matching Op is set.
type Command struct {
	Op     Op
	Color  colorful.Color
	Arc    geometry.Arc
	Rect   geometry.Rect
	Circle geometry.Circle
	Text   Text
}

// List is the ordered set of commands for one frame.
type List []Command

// Arc appends a filled arc.
func (l *List) Arc(a geometry.Arc, c colorful.Color) {
	*l = append(*l, Command{Op: OpArc, Color: c, Arc: a})
}

// Rect appends a filled rectangle.
func (l *List) Rect(r geometry.Rect, c colorful.Color) {
	*l = append(*l, Command{Op: OpRect, Color: c, Rect: r})
}

// Oval appends a filled ellipse inscribed in r.
func (l *List) Oval(r geometry.Rect, c colorful.Color) {
	*l = append(*l, Command{Op: OpOval, Color: c, Rect: r})
}

// Circle appends a filled circle.
func (l *List) Circle(x, y, r float64, c colorful.Color) {
	*l = append(*l, Command{Op: OpCircle, Color: c, Circle: geometry.Circle{X: x, Y: y, R: r}})
}

// Text appends a centred label.
func (l *List) Text(t Text, c colorful.Color) {
	*l = append(*l, Command{Op: OpText, Color: c, Text: t})
}

// Shape appends every part of a composite shape in one colour.
func (l *List) Shape(s geometry.Shape, c colorful.Color) {
	for _, a := range s.Arcs {
		l.Arc(a, c)
	}
	for _, r := range s.Rects {
		l.Rect(r, c)
	}
}

// Count returns how many commands use op.
func (l List) Count(op Op) int {
	n := 0
	for _, cmd := range l {
		if cmd.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the label values in paint order.
func (l List) Texts() []string {
	var out []string
	for _, cmd := range l {
		if cmd.Op == OpText {
			out = append(out, cmd.Text.Value)
		}
	}
	return out
}

// Filter returns the commands using op, in paint order.
func (l List) Filter(op Op) List {
	var out List
	for _, cmd := range l {
		if cmd.Op == op {
			out = append(out, cmd)
		}
	}
	return out
}
