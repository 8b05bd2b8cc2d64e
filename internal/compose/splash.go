package compose

import (
	"math"

	"waterbar/internal/anim"
	"waterbar/internal/draw"
	"waterbar/internal/geometry"
)

// dropletCount is the number of droplets in one wave.
const dropletCount = 4

// droplet is one evaluated splash droplet. Y is relative to the bar's centre line.
type droplet struct {
	X, Y, R float64
	Inside  bool
	Emitted bool
}

// droplets evaluates the wave at the given frame without touching any state.
func (c *Compositor) droplets(frame int, s geometry.Surface) [dropletCount]droplet {
	var out [dropletCount]droplet

	h := s.Height
	step := s.StepInterval()
	travelled := float64(frame) * c.params.WaterSpeed
	ratio := (math.Sin(travelled*2*math.Pi/step) + 1) / 2

	for i := range dropletCount {
		base := travelled - (h/3.6-ratio*4)*float64(i)
		if base < 0 {
			continue
		}

		d := droplet{
			X:       s.Width - h - base,
			Y:       math.Sin(base*2*math.Pi/step) * (h/2 - h/8),
			R:       h / 8,
			Emitted: true,
		}
		d.Inside = geometry.ContainsPoint(d.X, d.Y, d.R, h)
		if i > 0 {
			// later droplets trail smaller
			d.R -= float64(dropletCount-i) * d.R / 6
		}
		out[i] = d
	}
	return out
}

// splash draws the droplets flung from the right end and advances the wave.
// The wave restarts on the first frame where every droplet has left the bar.
func (c *Compositor) splash(list *draw.List, st *anim.State, s geometry.Surface) {
	anyInside := false
	for _, d := range c.droplets(st.SplashFrame, s) {
		if !d.Inside {
			continue
		}
		anyInside = true
		list.Circle(d.X, d.Y+s.Height/2, d.R, c.style.Foreground)
	}

	if anyInside {
		st.SplashFrame++
	} else {
		st.SplashFrame = 0
	}
}
