package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/ironsheep/plate-reader/internal/plate"
)

// Backend names accepted by New.
const (
	BackendTesseract = "tesseract"
	BackendVision    = "vision"
)

// Detector finds text in an image.
type Detector interface {
	// Detect returns the raw detections of img in engine order.
	Detect(ctx context.Context, img image.Image) ([]plate.RawDetection, error)

	// Close releases engine resources.
	Close() error
}

// Options selects and configures a detector backend.
type Options struct {
	// Backend is BackendTesseract or BackendVision. Empty means Tesseract.
	Backend string

	// Language is the Tesseract language code (e.g., "eng").
	Language string

	// Whitelist restricts the characters Tesseract may output. Empty means
	// no restriction.
	Whitelist string

	// TessdataPrefix overrides the Tesseract data directory.
	TessdataPrefix string
}

// New creates the detector named by opts.Backend.
func New(ctx context.Context, opts Options) (Detector, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendTesseract:
		return NewTesseractDetector(opts), nil
	case BackendVision:
		return NewVisionDetector(ctx)
	default:
		return nil, NewOCRError("New", ErrUnknownBackend, fmt.Sprintf("backend %q", opts.Backend))
	}
}

// encodePNG serializes img for engines that accept encoded bytes.
func encodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
