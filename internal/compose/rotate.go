package compose

import (
	"math"

	"waterbar/internal/anim"
	"waterbar/internal/draw"
	"waterbar/internal/geometry"
)

const circleCount = 4

// easedAngle is the lead circle's angle, in degrees, after rotation frames.
func (c *Compositor) easedAngle(rotation int) float64 {
	deg := rotation * c.params.DegreePerFrame % 360
	return 100 + 360*anim.Ease(float64(deg)/360)
}

// rotate advances the orbit one frame and draws it. The counter wraps once a
// full revolution is complete.
func (c *Compositor) rotate(list *draw.List, st *anim.State, s geometry.Surface) {
	st.Rotation++
	c.circles(list, s, c.easedAngle(st.Rotation))

	if st.Rotation*c.params.DegreePerFrame%360 == 0 {
		st.Rotation = 0
	}
}

// circles draws the orbiting circles around the right end, each one trailing
// and shrinking behind the lead.
func (c *Compositor) circles(list *draw.List, s geometry.Surface, lead float64) {
	h := s.Height
	cx, cy := s.Width-h/2, h/2
	dist := h / 4

	for i := range circleCount {
		angle := lead
		if i > 0 {
			angle = lead - 70*float64(i) + 25*float64(i-1)
		}
		rad := angle * math.Pi / 180
		r := h / 8 * math.Pow(0.7, float64(i))
		list.Circle(cx-dist*math.Sin(rad), cy+dist*math.Cos(rad), r, c.style.Indicator)
	}
}
