// Package loop runs the fixed-timestep render loop of a scene.
// The package separates frame pacing and surface lifecycle (Loop) from what
// is drawn (Scene) and where it ends up (Surface).
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waterbar/internal/draw"
	log "waterbar/internal/logging"
)

// Target is a drawable acquired from a Surface for one frame.
type Target interface {
	// Paint rasterises the frame's commands in order.
	Paint(list draw.List)
}

// Surface is the host's drawing area.
type Surface interface {
	// Acquire returns a target covering width×height pixels, or false when
	// the surface cannot be drawn on right now. The frame is then skipped.
	Acquire(width, height int) (Target, bool)

	// Present commits a painted target.
	Present(t Target) error
}

// Scene produces frames. The loop holds the scene lock from surface
// acquisition until the frame is presented, so Bounds and Compose are
// called with the lock held.
type Scene interface {
	sync.Locker
	Bounds() (width, height int)
	Compose() draw.List
}

// Stats counts what happened to each loop iteration.
type Stats struct {
	Frames   uint64 // frames presented
	Skipped  uint64 // iterations where the surface was unavailable
	Failed   uint64 // frames whose present returned an error
	Overruns uint64 // iterations that exceeded the frame budget
}

// Default pacing.
const (
	DefaultFrameBudget = 30 * time.Millisecond
	DefaultSpinWindow  = time.Millisecond
)

// Option configures a Loop.
type Option func(*Loop)

// WithFrameBudget sets the target duration of one iteration.
func WithFrameBudget(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.budget = d
		}
	}
}

// WithSpinWindow sets how long before the deadline the loop stops sleeping
// and starts yielding.
func WithSpinWindow(d time.Duration) Option {
	return func(l *Loop) {
		if d >= 0 {
			l.spin = d
		}
	}
}

// Loop renders a Scene onto a Surface at a fixed cadence while the surface
// is available.
type Loop struct {
	scene   Scene
	surface Surface
	budget  time.Duration
	spin    time.Duration

	mu        sync.Mutex    // guards start/stop
	available atomic.Bool   // cleared when the surface goes away
	done      chan struct{} // closed when the loop goroutine exits
	stopCtx   func() bool   // detaches the context watcher

	frames   atomic.Uint64
	skipped  atomic.Uint64
	failed   atomic.Uint64
	overruns atomic.Uint64
}

// New creates a Loop. Call Start once the surface exists.
func New(scene Scene, surface Surface, opts ...Option) *Loop {
	l := &Loop{
		scene:   scene,
		surface: surface,
		budget:  DefaultFrameBudget,
		spin:    DefaultSpinWindow,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start marks the surface available and begins rendering in a background
// goroutine. Cancelling ctx has the same effect as Stop without waiting.
// If the loop is already running, this is a no-op. After a cancellation
// Start waits for the previous run to finish and begins a new one.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done != nil {
		if l.available.Load() {
			return // already running
		}
		// the previous context was cancelled; its run exits after this frame
		<-l.done
		l.stopCtx()
		l.done = nil
	}

	l.available.Store(true)
	l.done = make(chan struct{})
	l.stopCtx = context.AfterFunc(ctx, func() {
		l.available.Store(false)
	})

	go l.run(uuid.NewString(), l.done)
}

// Stop marks the surface unavailable and waits for the in-flight frame to
// finish. If the loop is not running, this is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done == nil {
		return // not running
	}

	l.available.Store(false)
	l.stopCtx()
	<-l.done
	l.done = nil
}

// Stats returns the counters accumulated since the loop was created.
func (l *Loop) Stats() Stats {
	return Stats{
		Frames:   l.frames.Load(),
		Skipped:  l.skipped.Load(),
		Failed:   l.failed.Load(),
		Overruns: l.overruns.Load(),
	}
}

// run is the loop goroutine. It renders one frame per iteration and exits
// once the surface is no longer available; an iteration in progress always
// completes.
func (l *Loop) run(id string, done chan struct{}) {
	defer close(done)

	log.Info("loop started", zap.String("run", id), zap.Duration("budget", l.budget))
	for l.available.Load() {
		start := time.Now()
		l.frame(id)
		l.pace(start)
	}
	s := l.Stats()
	log.Info("loop stopped", zap.String("run", id),
		zap.Uint64("frames", s.Frames), zap.Uint64("skipped", s.Skipped),
		zap.Uint64("failed", s.Failed), zap.Uint64("overruns", s.Overruns))
}

// frame renders a single frame under the scene lock.
func (l *Loop) frame(id string) {
	l.scene.Lock()
	defer l.scene.Unlock()

	width, height := l.scene.Bounds()
	target, ok := l.surface.Acquire(width, height)
	if !ok {
		l.skipped.Add(1)
		return
	}

	target.Paint(l.scene.Compose())
	if err := l.surface.Present(target); err != nil {
		l.failed.Add(1)
		log.Warn("present failed", zap.String("run", id), zap.Error(err))
		return
	}
	l.frames.Add(1)
}
