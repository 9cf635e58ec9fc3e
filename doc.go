// Package clearloop is a minimal cross-platform graphics bootstrap.
//
// It opens a window, negotiates a WebGPU presentation surface, and drives
// a per-frame render loop that clears the screen to a fixed color. The
// interesting part is the surface lifecycle: adapter and device
// acquisition, capability-derived surface configuration, resize and
// surface-invalidation handling, and the acquire/encode/submit/present
// frame sequence.
//
// The package is deliberately not a rendering library. The render pass
// body is a single clear operation; there is no scene, no resources, no
// pipelines. Use it as a starting point for wgpu experiments, or as a
// reference for surface handling.
//
// # Quick Start
//
//	win, err := window.New(800, 600, "clearloop")
//	if err != nil { ... }
//	defer win.Destroy()
//
//	w, h := win.Size()
//	ctx, err := clearloop.New(win.SurfaceDescriptor(), w, h)
//	if err != nil { ... }
//	defer ctx.Release()
//
//	loop := clearloop.NewLoop(ctx, win.RequestRedraw)
//	win.RequestRedraw()
//	for loop.Running() && !win.ShouldClose() {
//		for _, ev := range win.Poll() {
//			if err := loop.Process(ev); err != nil { ... }
//		}
//	}
//
// By default clearloop produces no log output. Call [SetLogger] to enable
// diagnostics.
package clearloop
