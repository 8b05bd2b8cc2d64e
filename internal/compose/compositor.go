// Package compose turns animation state into the draw commands of one frame.
// Composing advances the per-effect frame counters held in the state.
package compose

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"waterbar/internal/anim"
	"waterbar/internal/draw"
	"waterbar/internal/geometry"
)

// Style holds the bar colours and the label shown while preparing.
type Style struct {
	Background  colorful.Color
	Foreground  colorful.Color
	Indicator   colorful.Color
	PrepareText string
}

// Params are the per-frame animation speeds.
type Params struct {
	WaterSpeed     float64 // droplet travel in pixels per frame
	DegreePerFrame int     // rotation of the circles per frame
	SpreadPerFrame float64 // growth of the intro pill in pixels per frame
}

// Default speeds, tuned for a 30ms frame.
const (
	DefaultWaterSpeed     = 12
	DefaultDegreePerFrame = 9
	DefaultSpreadPerFrame = 10
)

// DefaultParams returns the default animation speeds.
func DefaultParams() Params {
	return Params{
		WaterSpeed:     DefaultWaterSpeed,
		DegreePerFrame: DefaultDegreePerFrame,
		SpreadPerFrame: DefaultSpreadPerFrame,
	}
}

// Compositor builds frames for one bar style.
type Compositor struct {
	style  Style
	params Params
}

// New creates a Compositor. Zero or negative speeds fall back to defaults.
func New(style Style, params Params) *Compositor {
	if params.WaterSpeed <= 0 {
		params.WaterSpeed = DefaultWaterSpeed
	}
	if params.DegreePerFrame <= 0 {
		params.DegreePerFrame = DefaultDegreePerFrame
	}
	if params.SpreadPerFrame <= 0 {
		params.SpreadPerFrame = DefaultSpreadPerFrame
	}
	return &Compositor{style: style, params: params}
}

// Style returns the colours the compositor paints with.
func (c *Compositor) Style() Style {
	return c.style
}

// Compose returns the commands for the next frame of st on surface s.
func (c *Compositor) Compose(st *anim.State, s geometry.Surface) draw.List {
	if s.Empty() {
		return nil
	}

	var list draw.List
	switch st.Phase {
	case anim.PhasePrepare:
		list.Shape(geometry.PillOutline(s.Width, s.Height), c.style.Foreground)
		c.label(&list, s, c.style.PrepareText)
	case anim.PhasePreparingFold:
		list.Shape(geometry.PillOutline(s.Width, s.Height), c.style.Background)
	case anim.PhasePreparingSpread:
		c.spread(&list, st, s)
	case anim.PhaseRunning:
		c.running(&list, st, s, true)
	case anim.PhasePaused:
		c.running(&list, st, s, false)
	}
	return list
}

// running draws the live bar. A frozen frame skips the droplets and leaves
// every counter where it is.
func (c *Compositor) running(list *draw.List, st *anim.State, s geometry.Surface, live bool) {
	list.Shape(geometry.PillOutline(s.Width, s.Height), c.style.Background)
	list.Oval(geometry.RightCapOval(s.Width, s.Height), c.style.Foreground)

	if live {
		c.splash(list, st, s)
	}

	list.Shape(geometry.FilledToProgress(st.Progress, s.Width, s.Height), c.style.Foreground)

	if live {
		c.rotate(list, st, s)
	} else {
		c.circles(list, s, c.easedAngle(st.Rotation))
	}

	c.label(list, s, fmt.Sprintf("%d%%", st.Progress))
}

// spread grows a foreground pill out from the centre. The frame that reaches
// full width hands over to the running bar.
func (c *Compositor) spread(list *draw.List, st *anim.State, s geometry.Surface) {
	limit := s.Width - s.Height
	grown := float64(st.SpreadFrame) * c.params.SpreadPerFrame
	if grown >= limit {
		grown = limit
		st.Phase = anim.PhaseRunning
	} else {
		st.SpreadFrame++
	}

	left := (s.Width - s.Height - grown) / 2
	list.Shape(geometry.PillOutline(grown+s.Height, s.Height).Translate(left, 0), c.style.Foreground)
}

func (c *Compositor) label(list *draw.List, s geometry.Surface, value string) {
	list.Text(draw.Text{
		X:     s.Width / 2,
		Y:     s.Height/2 + s.Height/7,
		Size:  s.Height / 3,
		Value: value,
	}, c.style.Indicator)
}
