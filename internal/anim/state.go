// Package anim holds the animation state of a progress bar and its phase
// transitions. State is not safe for concurrent use; the owner serialises
// access.
package anim

import "fmt"

// Phase is the current animation mode.
type Phase int

const (
	PhasePrepare Phase = iota
	PhasePreparingFold
	PhasePreparingSpread
	PhaseRunning
	PhasePaused
)

// String returns a lowercase name for logs.
func (p Phase) String() string {
	switch p {
	case PhasePrepare:
		return "prepare"
	case PhasePreparingFold:
		return "preparing-fold"
	case PhasePreparingSpread:
		return "preparing-spread"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// DefaultProgress is the progress shown before the first update arrives.
const DefaultProgress = 10

// State is the mutable animation state of one bar.
type State struct {
	Progress int
	Phase    Phase

	SplashFrame int // frames since the current droplet wave started
	Rotation    int // frames into the current circle revolution
	SpreadFrame int // frames into the spread-out intro
}

// NewState returns the state of a freshly constructed bar.
func NewState() State {
	return State{
		Progress: DefaultProgress,
		Phase:    PhaseRunning,
	}
}

// SetProgress stores p when it lies in [0, 100] and the bar is not paused.
// The first value after Start ends the fold and begins the spread intro.
// It reports whether the value was accepted.
func (s *State) SetProgress(p int) bool {
	if p < 0 || p > 100 || s.Phase == PhasePaused {
		return false
	}
	s.Progress = p
	if s.Phase == PhasePreparingFold {
		s.Phase = PhasePreparingSpread
		s.SpreadFrame = 0
	}
	return true
}

// Prepare shows the idle bar with its prepare label.
func (s *State) Prepare() {
	s.Phase = PhasePrepare
}

// Start folds a prepared or paused bar, waiting for the first progress value.
// Other phases are left alone.
func (s *State) Start() {
	if s.Phase == PhasePrepare || s.Phase == PhasePaused {
		s.Phase = PhasePreparingFold
	}
}

// Pause freezes the bar. Progress updates are ignored until Start.
func (s *State) Pause() {
	s.Phase = PhasePaused
}

// Ease is an ease-out curve over [0, 1]: t²(2−t).
func Ease(t float64) float64 {
	return t * t * (2 - t)
}
