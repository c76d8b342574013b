package imaging

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/ironsheep/plate-reader/internal/plate"
)

func TestNewFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(DefaultFontSize)
	if err != nil {
		t.Fatalf("NewFontMeasurer failed: %v", err)
	}
	defer m.Close()

	w, h := m.Measure("MH12AB1234")
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure: got %vx%v, want positive", w, h)
	}

	longer, _ := m.Measure("MH12AB1234MH12AB1234")
	if longer <= w {
		t.Errorf("longer text should be wider: %v <= %v", longer, w)
	}

	if empty, _ := m.Measure(""); empty != 0 {
		t.Errorf("empty text width: got %v, want 0", empty)
	}

	if m.Face() == nil {
		t.Error("Face() returned nil")
	}
}

func TestNewFontMeasurer_InvalidSize(t *testing.T) {
	for _, size := range []float64{0, -3} {
		if _, err := NewFontMeasurer(size); err == nil {
			t.Errorf("size %v: expected error", size)
		}
	}
}

func TestFaceMeasurer_Basicfont(t *testing.T) {
	// basicfont.Face7x13 has a fixed 7px advance and an 11px ascent.
	m := NewFaceMeasurer(basicfont.Face7x13)

	w, h := m.Measure("KA01")
	if w != 28 {
		t.Errorf("width: got %v, want 28", w)
	}
	if h != 11 {
		t.Errorf("height: got %v, want 11", h)
	}
}

func TestFontMeasurer_IsPlateMeasurer(t *testing.T) {
	var _ plate.Measurer = NewFaceMeasurer(basicfont.Face7x13)
}
