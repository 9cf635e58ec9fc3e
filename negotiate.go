package clearloop

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// New negotiates a graphics context for a window surface.
//
// The surface descriptor comes from the platform layer (window/), which
// is the only platform-conditional code path; everything here is the
// same on every target. Width and height are the window's current
// physical size in pixels.
//
// Negotiation policy:
//   - instance prefers the primary backend set for the host platform
//   - the adapter must be compatible with the surface; software fallback
//     is explicitly disabled
//   - device and queue use default features and limits
//   - the configuration takes the platform's first reported present mode
//     and alpha mode, and the preferred surface format (see
//     preferredFormat)
//
// Every failure here is an unrecoverable startup error: there is no
// retry and no fallback path. Partially acquired resources are released
// before returning.
func New(desc *wgpu.SurfaceDescriptor, width, height uint32) (*Context, error) {
	if desc == nil {
		return nil, ErrNoSurface
	}

	instance := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: wgpu.InstanceBackendPrimary,
	})

	surface := instance.CreateSurface(desc)
	if surface == nil {
		instance.Release()
		return nil, ErrNoSurface
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		PowerPreference:      wgpu.PowerPreferenceUndefined,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	format := preferredFormat(caps.Formats)

	config := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       width,
		Height:      height,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &config)

	Logger().Info("surface configured",
		"format", format.String(),
		"width", width,
		"height", height,
		"presentMode", config.PresentMode.String(),
		"adapter", adapter.GetInfo().Name)

	return &Context{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
		surface:  surface,
		config:   config,
		width:    width,
		height:   height,
	}, nil
}

// preferredFormat selects the surface format from the capability list:
// the first gamma-corrected (sRGB) format in list order, else the first
// reported format. The ordering is deliberate; sRGB targets render the
// clear color as intended without a conversion pass.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGB(f) {
			return f
		}
	}
	return formats[0]
}

// isSRGB reports whether the format applies sRGB gamma correction.
// Surface capability lists only ever contain 8-bit color formats, so the
// two standard sRGB variants cover every case.
func isSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}
