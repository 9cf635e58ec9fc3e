// Package window is the glfw platform layer for clearloop.
//
// It owns the native window, translates glfw callbacks into clearloop
// events, and exposes the surface descriptor the negotiator needs. This
// is the only package with platform-conditional behavior; the core has
// exactly one code path regardless of target.
package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/clearloop"
)

// Window wraps a glfw window and queues its events for the frame loop.
//
// All methods must be called from the main thread (a glfw requirement);
// callers lock it with runtime.LockOSThread before glfw is touched.
type Window struct {
	win *glfw.Window

	// events queued by glfw callbacks, drained by Poll.
	events []clearloop.Event

	// redraw is set by RequestRedraw and consumed by the next Poll.
	redraw bool
}

// New initializes glfw and creates a window sized in screen coordinates.
// The window is created without a client API; presentation goes through
// the wgpu surface instead.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create window: %w", err)
	}

	w := &Window{win: win}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		// Zero sizes (minimize) pass through; the context absorbs them.
		w.push(clearloop.Event{
			Kind:   clearloop.EventResize,
			Width:  uint32(max(width, 0)),
			Height: uint32(max(height, 0)),
		})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		// Repeats are presses too; the loop treats them idempotently.
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		w.push(clearloop.Event{
			Kind: clearloop.EventKeyDown,
			Key:  translateKey(key),
			Mods: clearloop.Mods(mods),
		})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(clearloop.Event{Kind: clearloop.EventClose})
	})

	// Queue the initial size so the surface is configured before the
	// first frame; glfw only fires the callback on changes.
	fbw, fbh := win.GetFramebufferSize()
	w.push(clearloop.Event{
		Kind:   clearloop.EventResize,
		Width:  uint32(fbw),
		Height: uint32(fbh),
	})

	return w, nil
}

func (w *Window) push(ev clearloop.Event) {
	w.events = append(w.events, ev)
}

// SurfaceDescriptor returns the wgpu surface descriptor for this window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

// Size returns the current framebuffer size in pixels.
func (w *Window) Size() (width, height uint32) {
	fbw, fbh := w.win.GetFramebufferSize()
	return uint32(fbw), uint32(fbh)
}

// RequestRedraw schedules one redraw event for delivery on the next
// Poll. The frame loop calls this on every redraw it handles, which
// keeps the loop continuous.
func (w *Window) RequestRedraw() {
	w.redraw = true
}

// Poll pumps the platform event queue and returns the events gathered
// since the last call, ending with a redraw event when one was
// requested.
func (w *Window) Poll() []clearloop.Event {
	glfw.PollEvents()
	out := w.events
	w.events = nil
	if w.redraw {
		w.redraw = false
		out = append(out, clearloop.Event{Kind: clearloop.EventRedraw})
	}
	return out
}

// ShouldClose reports whether the platform has flagged the window for
// closing.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Destroy releases the window and shuts glfw down. Any surface created
// for this window must already have been released.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

// translateKey maps the glfw key code onto the core key set. Only keys
// the loop acts on are distinguished.
func translateKey(key glfw.Key) clearloop.Key {
	if key == glfw.KeyEscape {
		return clearloop.KeyEscape
	}
	return clearloop.KeyUnknown
}
