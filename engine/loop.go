package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/ping/mode"
	"github.com/lixenwraith/ping/physics"
	"github.com/lixenwraith/ping/render"
)

// Display is a terminal backend: a canvas plus size, resize and key input
type Display interface {
	render.Canvas
	Size() (cols, rows int)
	Resized() bool
	ReadKey() (byte, bool)
}

// Loop is the single-threaded frame loop driving one entity on one display
type Loop struct {
	display    Display
	entity     physics.Entity
	mode       mode.Mode
	frameDelay time.Duration
	onBounce   func(physics.Bounce)

	frames      uint64
	flushFailed bool
}

// Option configures a Loop
type Option func(*Loop)

// WithFrameDelay sleeps d after every frame; zero runs as fast as the display redraws
func WithFrameDelay(d time.Duration) Option {
	return func(l *Loop) { l.frameDelay = d }
}

// WithBounceHandler is called on every frame that reflects the entity
func WithBounceHandler(fn func(physics.Bounce)) Option {
	return func(l *Loop) { l.onBounce = fn }
}

// WithEntity replaces the default starting entity
func WithEntity(e physics.Entity) Option {
	return func(l *Loop) { l.entity = e }
}

// NewLoop creates a loop in normal mode with the default entity
func NewLoop(d Display, opts ...Option) *Loop {
	l := &Loop{
		display: d,
		entity:  physics.DefaultEntity(),
		mode:    mode.Normal{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Step renders one frame, then reads and applies at most one key
func (l *Loop) Step() mode.Mode {
	if l.display.Resized() {
		cols, rows := l.display.Size()
		log.Printf("engine: resized to %dx%d", cols, rows)
	}
	vp := physics.ViewportFor(l.display.Size())

	l.display.Clear()

	if b := physics.Advance(&l.entity, vp); b.Hit() {
		log.Printf("engine: bounce %s", b.Axis)
		if l.onBounce != nil {
			l.onBounce(b)
		}
	}
	render.Entity(l.display, l.entity, vp)
	render.Status(l.display, l.entity, vp, l.mode.String())

	// Terminal writes are not retried; report the first failure only
	if err := l.display.Flush(); err != nil && !l.flushFailed {
		l.flushFailed = true
		log.Printf("engine: flush failed: %v", err)
	}

	next := mode.Interpret(l.mode, mode.KeyOf(l.display.ReadKey()), &l.entity, vp)
	if next != l.mode {
		log.Printf("engine: mode %s -> %s", l.mode, next)
	}
	l.mode = next
	l.frames++
	return next
}

// Run steps until the mode becomes quit or ctx is cancelled, returning frames rendered
func (l *Loop) Run(ctx context.Context) uint64 {
	var timer *time.Timer
	if l.frameDelay > 0 {
		timer = time.NewTimer(l.frameDelay)
		defer timer.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("engine: stopped: %v", ctx.Err())
			return l.frames
		default:
		}

		if mode.IsQuit(l.Step()) {
			return l.frames
		}

		if timer != nil {
			timer.Reset(l.frameDelay)
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
		}
	}
}

// Entity returns a copy of the simulated entity
func (l *Loop) Entity() physics.Entity {
	return l.entity
}

// Mode returns the active command mode
func (l *Loop) Mode() mode.Mode {
	return l.mode
}

// Frames returns the number of completed frames
func (l *Loop) Frames() uint64 {
	return l.frames
}
