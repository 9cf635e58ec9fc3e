package clearloop

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// clearColor is the fixed color every frame is cleared to.
var clearColor = wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// Verify Context implements the loop's render target.
var _ RenderTarget = (*Context)(nil)

// Context owns the GPU resources bound to one window surface: the
// device, queue, surface, and the currently applied surface
// configuration. It is driven from a single goroutine; none of its
// methods are safe for concurrent use.
//
// The surface references window-owned resources, so the window must
// outlive the Context: call [Context.Release] strictly before destroying
// the window.
type Context struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	config wgpu.SurfaceConfiguration

	// last known window size; always equals config.Width/Height and is
	// never zero while the surface is configured.
	width  uint32
	height uint32
}

// Config is a read-only snapshot of the negotiated surface
// configuration.
type Config struct {
	Format      wgpu.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode
}

// Config returns the currently applied surface configuration.
func (c *Context) Config() Config {
	return Config{
		Format:      c.config.Format,
		Width:       c.config.Width,
		Height:      c.config.Height,
		PresentMode: c.config.PresentMode,
		AlphaMode:   c.config.AlphaMode,
	}
}

// Size returns the last known window size.
func (c *Context) Size() (width, height uint32) {
	return c.width, c.height
}

// Resize applies a new physical window size and reconfigures the
// surface. A zero width or height (window minimized) is ignored and the
// previous configuration stays active: reconfiguring a surface to a
// zero-area target is invalid on most backends.
//
// Resize cannot fail observably; backend errors during reconfiguration
// are fatal and out of scope for recovery.
func (c *Context) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		Logger().Debug("ignoring zero-area resize", "width", width, "height", height)
		return
	}
	c.width = width
	c.height = height
	c.config.Width = width
	c.config.Height = height
	if c.surface != nil {
		c.surface.Configure(c.adapter, c.device, &c.config)
	}
}

// Render produces exactly one frame: acquire the next surface texture,
// record a single render pass that clears it to clearColor, submit, and
// present. There are no implicit retries.
//
// Frame acquisition is the sole fallible step. Its failures are
// classified onto the package sentinels so the caller can branch:
//
//   - [ErrSurfaceLost], [ErrSurfaceOutdated]: reconfigure at the last
//     known size and skip this frame
//   - [ErrSurfaceTimeout]: skip this frame and continue
//   - [ErrOutOfMemory]: terminate the application
func (c *Context) Render() error {
	if c.surface == nil {
		return ErrNotInitialized
	}

	frame, err := c.surface.GetCurrentTexture()
	if err != nil {
		return classifyAcquireError(err)
	}
	defer frame.Release()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("clearloop: create frame view: %w", err)
	}
	defer view.Release()

	encoder, err := c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "clear encoder",
	})
	if err != nil {
		return fmt.Errorf("clearloop: create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "clear pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearColor,
		}},
	})
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("clearloop: finish command encoder: %w", err)
	}
	defer cmd.Release()

	c.queue.Submit(cmd)
	c.surface.Present()
	return nil
}

// Release tears down all GPU resources. The surface is released first so
// its references into window-owned resources are gone before the caller
// destroys the window. The Context must not be used afterwards.
func (c *Context) Release() {
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
