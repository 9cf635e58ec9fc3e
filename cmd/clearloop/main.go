// Command clearloop opens a window and clears it to a fixed color every
// frame. Close the window or press Escape to exit.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/clearloop"
	"github.com/gogpu/clearloop/window"
)

func init() {
	// glfw and the GPU surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		title   = flag.String("title", "clearloop", "window title")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	clearloop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	clearloop.ReportAdapters()

	win, err := window.New(*width, *height, *title)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	w, h := win.Size()
	ctx, err := clearloop.New(win.SurfaceDescriptor(), w, h)
	if err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	// The surface references window resources: release it before the
	// window is destroyed.
	defer ctx.Release()

	loop := clearloop.NewLoop(ctx, win.RequestRedraw)
	win.RequestRedraw()

	for loop.Running() && !win.ShouldClose() {
		for _, ev := range win.Poll() {
			if err := loop.Process(ev); err != nil {
				log.Fatalf("Rendering failed: %v", err)
			}
		}
	}
}
