package avatar

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrProcessingFailed covers unsupported formats and corrupt input alike.
var ErrProcessingFailed = errors.New("avatar processor: cannot process image")

// Processor turns uploaded image bytes into a fixed-size thumbnail.
type Processor interface {
	Resize(data []byte, width, height int) ([]byte, error)
}

type ImagingProcessor struct{}

var _ Processor = (*ImagingProcessor)(nil)

func NewImagingProcessor() *ImagingProcessor {
	return &ImagingProcessor{}
}

// Resize decodes data, scales it to width x height, and re-encodes it in its
// original format.
func (p *ImagingProcessor) Resize(data []byte, width, height int) ([]byte, error) {
	img, formatName, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrProcessingFailed, err)
	}

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return nil, fmt.Errorf("%w: format %q: %v", ErrProcessingFailed, formatName, err)
	}

	thumb := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return nil, fmt.Errorf("%w: encode %q: %v", ErrProcessingFailed, formatName, err)
	}

	return buf.Bytes(), nil
}
