package imaging

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is the label font size in points at 72 DPI.
const DefaultFontSize = 22

// FontMeasurer measures and renders label text with one bold face. It
// satisfies plate.Measurer.
type FontMeasurer struct {
	face font.Face
}

// NewFontMeasurer loads the bundled Go Bold face at size points.
func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return &FontMeasurer{face: face}, nil
}

// NewFaceMeasurer wraps an existing face.
func NewFaceMeasurer(face font.Face) *FontMeasurer {
	return &FontMeasurer{face: face}
}

// Measure returns the advance width of text and the face ascent, both
// rounded up to whole pixels.
func (m *FontMeasurer) Measure(text string) (float64, float64) {
	width := font.MeasureString(m.face, text).Ceil()
	height := m.face.Metrics().Ascent.Ceil()
	return float64(width), float64(height)
}

// Face returns the underlying font face.
func (m *FontMeasurer) Face() font.Face {
	return m.face
}

// Close releases the face.
func (m *FontMeasurer) Close() error {
	return m.face.Close()
}
