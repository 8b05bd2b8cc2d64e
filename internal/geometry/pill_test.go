package geometry

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPillOutline(t *testing.T) {
	s := PillOutline(400, 100)

	require.Len(t, s.Arcs, 2)
	require.Len(t, s.Rects, 1)

	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}, s.Arcs[0].Oval)
	assert.Equal(t, 90.0, s.Arcs[0].Start)
	assert.Equal(t, 180.0, s.Arcs[0].Sweep)
	assert.Equal(t, Rect{Left: 300, Top: 0, Right: 400, Bottom: 100}, s.Arcs[1].Oval)
	assert.Equal(t, -90.0, s.Arcs[1].Start)
	assert.Equal(t, 180.0, s.Arcs[1].Sweep)
	assert.Equal(t, Rect{Left: 50, Top: 0, Right: 350, Bottom: 100}, s.Rects[0])
	assert.Equal(t, 400.0, s.extent())
}

func TestFilledToProgress(t *testing.T) {
	tests := []struct {
		name       string
		progress   int
		wantArcs   int
		wantRects  int
		wantExtent float64
	}{
		{"zero is empty", 0, 0, 0, 0},
		{"inside left cap", 10, 1, 0, 40},
		{"near cap end", 12, 1, 0, 48},
		{"half way", 50, 1, 1, 200},
		{"last rect step", 87, 1, 1, 348},
		{"right cap clamps to full", 90, 2, 1, 400},
		{"full", 100, 2, 1, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FilledToProgress(tt.progress, 400, 100)
			assert.Len(t, s.Arcs, tt.wantArcs)
			assert.Len(t, s.Rects, tt.wantRects)
			assert.InDelta(t, tt.wantExtent, s.extent(), 1e-9)
		})
	}
}

func TestFilledToProgressPartialArc(t *testing.T) {
	// 400/100*10 = 40px into a 50px radius cap
	s := FilledToProgress(10, 400, 100)
	require.Len(t, s.Arcs, 1)

	arc := s.Arcs[0]
	v := math.Acos((50.0-40.0)/50.0) * 180 / math.Pi
	assert.False(t, arc.UseCenter)
	assert.InDelta(t, 180-v, arc.Start, 1e-9)
	assert.InDelta(t, 2*v, arc.Sweep, 1e-9)
}

func TestFilledToProgressEmptyAndFull(t *testing.T) {
	assert.True(t, FilledToProgress(0, 400, 100).Empty())
	assert.Equal(t, PillOutline(400, 100), FilledToProgress(100, 400, 100))
}

// TestFilledToProgressMonotonic verifies the fill never shrinks as progress grows.
func TestFilledToProgressMonotonic(t *testing.T) {
	property := func(width, height uint8) bool {
		h := float64(height%60) + 4
		w := h*2 + float64(width)

		prev := -1.0
		for p := 0; p <= 100; p++ {
			extent := FilledToProgress(p, w, h).extent()
			if extent+1e-9 < prev {
				return false
			}
			prev = extent
		}
		return prev == w
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestContainsPoint(t *testing.T) {
	tests := []struct {
		name    string
		x, y, r float64
		want    bool
	}{
		{"straight section", 200, 10, 12.5, true},
		{"above bar", 200, 51, 1, false},
		{"left of bar", -1, 0, 1, false},
		{"cap centre", 50, 0, 12.5, true},
		{"touching cap edge", 12.5, 0, 12.5, true},
		{"clipped by cap", 10, 0, 12.5, false},
		{"clipped diagonally", 20, 40, 12.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPoint(tt.x, tt.y, tt.r, 100))
		})
	}
}

// TestContainsPointSymmetry verifies the containment test mirrors across the centre line.
func TestContainsPointSymmetry(t *testing.T) {
	property := func(x, y int16, r, h uint8) bool {
		fx, fy := float64(x)/4, float64(y)/4
		fr, fh := float64(r)/8, float64(h)+1
		return ContainsPoint(fx, fy, fr, fh) == ContainsPoint(fx, -fy, fr, fh)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestAngleWithin(t *testing.T) {
	assert.True(t, AngleWithin(0, -90, 180))
	assert.True(t, AngleWithin(180, 90, 180))
	assert.False(t, AngleWithin(0, 90, 180))
	assert.True(t, AngleWithin(-45, 300, 30))
	assert.True(t, AngleWithin(123, 0, 360))
}
