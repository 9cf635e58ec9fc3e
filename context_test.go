package clearloop

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

// testContext builds a Context with a configuration but no GPU
// resources. Resize skips the surface call when the surface is nil, so
// the size bookkeeping is testable without a device.
func testContext(width, height uint32) *Context {
	return &Context{
		config: wgpu.SurfaceConfiguration{
			Usage:  wgpu.TextureUsageRenderAttachment,
			Format: wgpu.TextureFormatBGRA8UnormSrgb,
			Width:  width,
			Height: height,
		},
		width:  width,
		height: height,
	}
}

func TestContextResize(t *testing.T) {
	c := testContext(800, 600)

	c.Resize(1024, 768)

	cfg := c.Config()
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("Config() size = %dx%d, want 1024x768", cfg.Width, cfg.Height)
	}
	w, h := c.Size()
	if w != 1024 || h != 768 {
		t.Errorf("Size() = %dx%d, want 1024x768", w, h)
	}
}

func TestContextResizeZeroIgnored(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(800, 600)
			c.Resize(tt.w, tt.h)

			cfg := c.Config()
			if cfg.Width != 800 || cfg.Height != 600 {
				t.Errorf("Config() size = %dx%d, want unchanged 800x600", cfg.Width, cfg.Height)
			}
		})
	}
}

// The configuration must always match the last known size, through any
// sequence of valid and ignored resizes.
func TestContextSizeConfigInvariant(t *testing.T) {
	c := testContext(800, 600)

	for _, sz := range [][2]uint32{{1024, 768}, {0, 0}, {640, 480}, {640, 0}, {1, 1}} {
		c.Resize(sz[0], sz[1])

		cfg := c.Config()
		w, h := c.Size()
		if cfg.Width != w || cfg.Height != h {
			t.Fatalf("after Resize(%d, %d): config %dx%d != size %dx%d",
				sz[0], sz[1], cfg.Width, cfg.Height, w, h)
		}
		if w == 0 || h == 0 {
			t.Fatalf("after Resize(%d, %d): zero dimension held (%dx%d)", sz[0], sz[1], w, h)
		}
	}
}

func TestClearColorFixed(t *testing.T) {
	want := wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
	if clearColor != want {
		t.Errorf("clearColor = %+v, want %+v", clearColor, want)
	}
}

func TestContextRenderNotInitialized(t *testing.T) {
	c := &Context{}
	if err := c.Render(); err != ErrNotInitialized {
		t.Errorf("Render() on empty context = %v, want ErrNotInitialized", err)
	}
}

func TestContextReleaseIdempotent(t *testing.T) {
	c := &Context{}
	c.Release()
	c.Release()
}
