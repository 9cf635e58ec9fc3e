package clearloop

// EventKind identifies a platform window or input event.
type EventKind int

const (
	EventUnknown EventKind = iota

	// EventResize reports a new physical framebuffer size.
	EventResize

	// EventRedraw asks the loop to produce the next frame.
	EventRedraw

	// EventClose reports that the user asked to close the window.
	EventClose

	// EventKeyDown reports a key press. Key repeats are delivered as
	// additional EventKeyDown events.
	EventKeyDown
)

// Key identifies a keyboard key. Only keys the loop acts on are named;
// everything else maps to KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Mods is a bitmask of active keyboard modifiers. The loop only ever
// distinguishes "no modifiers" from "some modifier"; the bit layout is
// whatever the platform layer delivers.
type Mods uint32

// ModNone means no modifier keys are held.
const ModNone Mods = 0

// Event is a single platform event delivered to the frame loop.
// Fields beyond Kind are populated per kind: Width/Height for
// EventResize, Key/Mods for EventKeyDown.
type Event struct {
	Kind   EventKind
	Width  uint32
	Height uint32
	Key    Key
	Mods   Mods
}

// InputHandler is the seam for application input handling. The loop
// offers every event to the handler before its own dispatch; returning
// true claims the event and suppresses the default handling.
//
// The loop installs no handler by default.
type InputHandler interface {
	// HandleEvent reports whether the event was consumed.
	HandleEvent(ev Event) bool
}
