package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeTestImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImageFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }},
		{"bmp", func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }},
	}
	for _, tt := range tests {
		data := writeTestImage(t, tt.encode)
		img, format, err := DecodeImage(bytes.NewReader(data))
		if err != nil {
			t.Errorf("%s: DecodeImage error: %v", tt.name, err)
			continue
		}
		if format != tt.name {
			t.Errorf("format = %q, want %q", format, tt.name)
		}
		if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
			t.Errorf("%s: bounds = %v", tt.name, img.Bounds())
		}
	}
}

func TestLoadImageDrawable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cell.png")
	data := writeTestImage(t, func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadImageDrawable(path)
	if err != nil {
		t.Fatalf("LoadImageDrawable: %v", err)
	}
	if d.IntrinsicSize() != (Size{Width: 3, Height: 2}) {
		t.Errorf("IntrinsicSize() = %+v", d.IntrinsicSize())
	}
	if d.Quality != FilterQualityLow {
		t.Errorf("Quality = %v, want low", d.Quality)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("expected error for undecodable file")
	}
}
