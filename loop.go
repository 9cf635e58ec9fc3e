package clearloop

import "errors"

// RenderTarget is what the frame loop drives. *Context implements it;
// tests substitute fakes.
type RenderTarget interface {
	// Resize applies a new physical size to the presentation surface.
	Resize(width, height uint32)

	// Render produces one frame or returns a classified surface error.
	Render() error

	// Size returns the last known valid size.
	Size() (width, height uint32)
}

// LoopOption configures a Loop during creation.
type LoopOption func(*loopOptions)

// loopOptions holds optional configuration for Loop creation.
type loopOptions struct {
	input  InputHandler
	update func()
}

// WithInput installs an input handler that is offered every event before
// the loop's default dispatch. See [InputHandler].
func WithInput(h InputHandler) LoopOption {
	return func(o *loopOptions) {
		o.input = h
	}
}

// WithUpdate installs a per-frame update hook, run after the redraw
// request and before rendering. The default is a no-op.
func WithUpdate(fn func()) LoopOption {
	return func(o *loopOptions) {
		o.update = fn
	}
}

// Loop is the frame loop driver: a small state machine over platform
// events. It gates rendering on the surface having received at least one
// valid size, dispatches per-frame surface errors, and stops on a close
// request or an unmodified Escape press.
//
// Like Context, a Loop belongs to a single goroutine.
type Loop struct {
	target        RenderTarget
	requestRedraw func()
	input         InputHandler
	update        func()

	// configured flips to true on the first resize event and never
	// resets; rendering before it would target an unconfigured or
	// zero-size surface.
	configured bool
	running    bool
}

// NewLoop creates a frame loop driving target. requestRedraw schedules
// the next redraw with the platform; the loop calls it on every redraw
// event, making the loop continuous.
func NewLoop(target RenderTarget, requestRedraw func(), opts ...LoopOption) *Loop {
	var o loopOptions
	for _, opt := range opts {
		opt(&o)
	}
	if requestRedraw == nil {
		requestRedraw = func() {}
	}
	return &Loop{
		target:        target,
		requestRedraw: requestRedraw,
		input:         o.input,
		update:        o.update,
		running:       true,
	}
}

// Running reports whether the loop is still accepting events. Once it
// returns false — after a close request, Escape, or a fatal render
// error — every further event is ignored.
func (l *Loop) Running() bool {
	return l.running
}

// Configured reports whether the surface has received at least one valid
// size.
func (l *Loop) Configured() bool {
	return l.configured
}

// Process dispatches one platform event. It returns a non-nil error only
// for fatal render failures ([ErrOutOfMemory] or an unclassified
// acquisition error); the loop has already stopped by then and the
// caller must terminate. Clean shutdown (close request, Escape) stops
// the loop with a nil error.
func (l *Loop) Process(ev Event) error {
	if !l.running {
		return nil
	}

	if l.input != nil && l.input.HandleEvent(ev) {
		return nil
	}

	switch ev.Kind {
	case EventResize:
		l.configured = true
		l.target.Resize(ev.Width, ev.Height)

	case EventRedraw:
		l.requestRedraw()
		if !l.configured {
			Logger().Debug("skipping frame, surface not configured")
			return nil
		}
		if l.update != nil {
			l.update()
		}
		return l.renderFrame()

	case EventClose:
		l.running = false

	case EventKeyDown:
		// Repeat deliveries of Escape are idempotent stop requests.
		if ev.Key == KeyEscape && ev.Mods == ModNone {
			l.running = false
		}
	}
	return nil
}

// renderFrame runs one render and dispatches its outcome. Lost and
// outdated surfaces are reconfigured at the last known size and the
// frame is skipped; timeouts skip the frame with a warning; out of
// memory stops the loop and propagates.
func (l *Loop) renderFrame() error {
	err := l.target.Render()
	switch {
	case err == nil:
		return nil

	case errors.Is(err, ErrSurfaceLost), errors.Is(err, ErrSurfaceOutdated):
		Logger().Info("surface invalidated, reconfiguring", "cause", err)
		l.target.Resize(l.target.Size())
		return nil

	case errors.Is(err, ErrSurfaceTimeout):
		Logger().Warn("surface timeout, frame skipped")
		return nil

	default:
		// ErrOutOfMemory, or an acquisition failure of a kind this
		// layer does not know. Continued rendering is undefined.
		l.running = false
		return err
	}
}
