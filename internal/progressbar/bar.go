// Package progressbar is the animated water progress bar: it owns the
// animation state, the bar geometry and the style, and serialises every
// access to them behind a single lock.
//
// Callers on any goroutine may use SetProgress, Prepare, Start and Pause.
// A render loop drives frames through the Lock/Bounds/Compose/Unlock
// contract, or a toolkit adapter may call Render directly.
package progressbar

import (
	"sync"

	"go.uber.org/zap"

	"waterbar/internal/anim"
	"waterbar/internal/compose"
	"waterbar/internal/draw"
	"waterbar/internal/geometry"
	log "waterbar/internal/logging"
)

// Bar is a single progress bar instance.
type Bar struct {
	mu      sync.Mutex
	state   anim.State
	surface geometry.Surface
	comp    *compose.Compositor
}

// New creates a bar with an immutable style and animation speeds.
func New(style compose.Style, params compose.Params) *Bar {
	return &Bar{
		state: anim.NewState(),
		comp:  compose.New(style, params),
	}
}

// Style returns the colours and prepare label the bar was built with.
func (b *Bar) Style() compose.Style {
	return b.comp.Style()
}

// SetProgress shows p percent. Values outside [0, 100], or any value while
// paused, are ignored.
func (b *Bar) SetProgress(p int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	from := b.state.Phase
	b.state.SetProgress(p)
	b.logTransition(from)
}

// Prepare shows the idle bar with its prepare label.
func (b *Bar) Prepare() {
	b.mu.Lock()
	defer b.mu.Unlock()

	from := b.state.Phase
	b.state.Prepare()
	b.logTransition(from)
}

// Start begins the intro animation of a prepared or paused bar. The bar
// spreads out once the next progress value arrives.
func (b *Bar) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	from := b.state.Phase
	b.state.Start()
	b.logTransition(from)
}

// Pause freezes the bar until Start is called.
func (b *Bar) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()

	from := b.state.Phase
	b.state.Pause()
	b.logTransition(from)
}

// Resize lays the bar out on a host surface of width×height pixels.
func (b *Bar) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.surface = geometry.Fit(width, height)
	log.Debug("progressbar resized",
		zap.Int("width", width), zap.Int("height", height),
		zap.Float64("bar_width", b.surface.Width), zap.Float64("bar_height", b.surface.Height))
}

// Snapshot returns a copy of the current animation state.
func (b *Bar) Snapshot() anim.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Render composes the next frame.
func (b *Bar) Render() draw.List {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Compose()
}

// Lock acquires the bar lock for a render loop frame.
func (b *Bar) Lock() { b.mu.Lock() }

// Unlock releases the bar lock.
func (b *Bar) Unlock() { b.mu.Unlock() }

// Bounds returns the surface size in whole pixels. The caller holds the lock.
func (b *Bar) Bounds() (int, int) {
	return b.surface.Bounds()
}

// Compose builds the next frame and advances the effect counters.
// The caller holds the lock.
func (b *Bar) Compose() draw.List {
	from := b.state.Phase
	list := b.comp.Compose(&b.state, b.surface)
	b.logTransition(from)
	return list
}

func (b *Bar) logTransition(from anim.Phase) {
	if to := b.state.Phase; to != from {
		log.Debug("progressbar phase changed", zap.Stringer("from", from), zap.Stringer("to", to))
	}
}
