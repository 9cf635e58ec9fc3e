package clearloop

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestPreferredFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			name:    "srgb first",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:    "srgb later in list",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
			want:    wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			name: "first srgb wins over later srgb",
			formats: []wgpu.TextureFormat{
				wgpu.TextureFormatBGRA8Unorm,
				wgpu.TextureFormatBGRA8UnormSrgb,
				wgpu.TextureFormatRGBA8UnormSrgb,
			},
			want: wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:    "no srgb falls back to first",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatRGBA8Unorm,
		},
		{
			name:    "single entry",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatBGRA8Unorm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preferredFormat(tt.formats); got != tt.want {
				t.Errorf("preferredFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSRGB(t *testing.T) {
	if !isSRGB(wgpu.TextureFormatBGRA8UnormSrgb) {
		t.Error("isSRGB(BGRA8UnormSrgb) = false, want true")
	}
	if !isSRGB(wgpu.TextureFormatRGBA8UnormSrgb) {
		t.Error("isSRGB(RGBA8UnormSrgb) = false, want true")
	}
	if isSRGB(wgpu.TextureFormatBGRA8Unorm) {
		t.Error("isSRGB(BGRA8Unorm) = true, want false")
	}
}

func TestNewNilDescriptor(t *testing.T) {
	if _, err := New(nil, 800, 600); err != ErrNoSurface {
		t.Errorf("New(nil, ...) error = %v, want ErrNoSurface", err)
	}
}
