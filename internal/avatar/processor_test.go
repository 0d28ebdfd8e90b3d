package avatar_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/ferdiebergado/accountkit/internal/avatar"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestImagingProcessor_Resize(t *testing.T) {
	t.Parallel()

	processor := avatar.NewImagingProcessor()

	t.Run("Scales an image to the thumbnail size", func(t *testing.T) {
		t.Parallel()

		resized, err := processor.Resize(pngBytes(t, 600, 400), 250, 250)
		if err != nil {
			t.Fatalf("Resize() error = %v", err)
		}

		thumb, format, err := image.Decode(bytes.NewReader(resized))
		if err != nil {
			t.Fatalf("image.Decode() error = %v", err)
		}
		if format != "png" {
			t.Errorf("format = %q, want the original format kept", format)
		}

		bounds := thumb.Bounds()
		if bounds.Dx() != 250 || bounds.Dy() != 250 {
			t.Errorf("bounds = %dx%d, want: 250x250", bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("Rejects bytes that are not an image", func(t *testing.T) {
		t.Parallel()

		_, err := processor.Resize([]byte("definitely not an image"), 250, 250)
		if !errors.Is(err, avatar.ErrProcessingFailed) {
			t.Errorf("Resize() error = %v, want: %v", err, avatar.ErrProcessingFailed)
		}
	})

	t.Run("Rejects truncated image data", func(t *testing.T) {
		t.Parallel()

		data := pngBytes(t, 600, 400)
		_, err := processor.Resize(data[:len(data)/2], 250, 250)
		if !errors.Is(err, avatar.ErrProcessingFailed) {
			t.Errorf("Resize() error = %v, want: %v", err, avatar.ErrProcessingFailed)
		}
	})
}
