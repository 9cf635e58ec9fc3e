package clearloop

import (
	"errors"
	"fmt"
	"strings"
)

// Package errors for surface negotiation and frame presentation.
var (
	// ErrNoSurface is returned when a presentation surface cannot be
	// created for the window.
	ErrNoSurface = errors.New("clearloop: surface creation failed")

	// ErrNoAdapter is returned when no hardware adapter compatible with
	// the surface is available.
	ErrNoAdapter = errors.New("clearloop: no compatible adapter")

	// ErrNoDevice is returned when device or queue acquisition fails.
	ErrNoDevice = errors.New("clearloop: device request failed")

	// ErrNotInitialized is returned when rendering is attempted on a
	// released or unconfigured context.
	ErrNotInitialized = errors.New("clearloop: context not initialized")

	// ErrSurfaceLost is returned by Render when the surface has been
	// lost. The caller must reconfigure at the last known size.
	ErrSurfaceLost = errors.New("clearloop: surface lost")

	// ErrSurfaceOutdated is returned by Render when the surface no
	// longer matches the window. The caller must reconfigure at the
	// last known size.
	ErrSurfaceOutdated = errors.New("clearloop: surface outdated")

	// ErrSurfaceTimeout is returned by Render when frame acquisition
	// timed out. The frame is skipped; rendering may continue.
	ErrSurfaceTimeout = errors.New("clearloop: frame acquisition timed out")

	// ErrOutOfMemory is returned by Render when the driver reports
	// memory exhaustion. Continued rendering is undefined; the caller
	// must terminate.
	ErrOutOfMemory = errors.New("clearloop: surface out of memory")
)

// classifyAcquireError maps a frame-acquisition failure onto one of the
// package sentinel errors so callers can branch with errors.Is. The wgpu
// binding reports the surface status only through the error text, so
// classification matches on the status keywords.
//
// Acquisition has exactly four failure kinds: lost, outdated, timeout,
// and out of memory. Anything else is wrapped unclassified and treated
// as fatal by the loop.
func classifyAcquireError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %w", ErrSurfaceTimeout, err)
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	default:
		return fmt.Errorf("clearloop: acquire frame: %w", err)
	}
}
