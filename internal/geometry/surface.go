package geometry

// Surface is the drawing area the bar is laid out on, in pixels.
// Height is the bar height used to size every primitive.
type Surface struct {
	Width  float64
	Height float64
}

// Fit derives the bar geometry from a host surface size. A surface narrower
// than twice its height gets a bar a quarter of its width tall so the pill
// keeps its proportions.
func Fit(width, height int) Surface {
	if width <= 0 || height <= 0 {
		return Surface{}
	}
	if width < 2*height {
		return Surface{Width: float64(width), Height: float64(width / 4)}
	}
	return Surface{Width: float64(width), Height: float64(height)}
}

// Empty reports whether there is nothing to draw on.
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// StepInterval is the wavelength, in pixels, of the splash droplet path.
func (s Surface) StepInterval() float64 {
	return 2 * s.Height
}

// Bounds returns the surface size rounded down to whole pixels.
func (s Surface) Bounds() (int, int) {
	return int(s.Width), int(s.Height)
}
