package plate

import "math"

const (
	// LabelPadding is the horizontal margin on each side of a label's text.
	// The plate label also uses it vertically.
	LabelPadding = 5

	// PlateLabelOffset is the gap between the detection's bottom edge and
	// the plate label box.
	PlateLabelOffset = 10
)

// Measurer reports the rendered size of text in pixels for one fixed font
// family, scale and weight. Height is measured above the baseline.
type Measurer interface {
	Measure(text string) (width, height float64)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string) (width, height float64)

// Measure calls f(text).
func (f MeasureFunc) Measure(text string) (float64, float64) {
	return f(text)
}

// LayoutBox is a label background rectangle plus the baseline origin at
// which its text is drawn.
type LayoutBox struct {
	Origin     Point   `json:"origin"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	TextOrigin Point   `json:"text_origin"`
}

// Max returns the bottom-right corner of the box.
func (b LayoutBox) Max() Point {
	return Point{X: b.Origin.X + b.Width, Y: b.Origin.Y + b.Height}
}

// Overlaps reports whether b and o share any interior area.
func (b LayoutBox) Overlaps(o LayoutBox) bool {
	bMax, oMax := b.Max(), o.Max()
	return b.Origin.X < oMax.X && bMax.X > o.Origin.X &&
		b.Origin.Y < oMax.Y && bMax.Y > o.Origin.Y
}

// Layout holds the label boxes computed for one detection.
type Layout struct {
	Region LayoutBox `json:"region"`
	Plate  LayoutBox `json:"plate"`
}

// Layouter places annotation labels relative to a detection polygon.
type Layouter struct {
	measure Measurer
}

// NewLayouter returns a Layouter sizing labels with m.
func NewLayouter(m Measurer) *Layouter {
	return &Layouter{measure: m}
}

// Layout computes the region and plate label boxes for poly.
//
// The region box sits directly above the top-left corner, as tall as the
// region text and padded horizontally by LabelPadding on both sides. The
// plate box starts PlateLabelOffset below the bottom edge, left-aligned with
// the top-left corner and padded by LabelPadding on every side. The bottom
// edge is the lower of the bottom-right and top-left Y values, so the two
// boxes never overlap even for a polygon delivered out of order.
//
// Boxes of other detections are not considered; labels of neighbouring
// plates may overlap each other.
func (l *Layouter) Layout(poly Polygon, regionLabel, plateLabel string) Layout {
	tl, br := poly.TopLeft(), poly.BottomRight()

	rw, rh := l.size(regionLabel)
	region := LayoutBox{
		Origin:     Point{X: tl.X, Y: tl.Y - rh},
		Width:      rw + 2*LabelPadding,
		Height:     rh,
		TextOrigin: Point{X: tl.X + LabelPadding, Y: tl.Y},
	}

	pw, ph := l.size(plateLabel)
	top := math.Max(br.Y, tl.Y) + PlateLabelOffset
	plate := LayoutBox{
		Origin:     Point{X: tl.X, Y: top},
		Width:      pw + 2*LabelPadding,
		Height:     ph + 2*LabelPadding,
		TextOrigin: Point{X: tl.X + LabelPadding, Y: top + LabelPadding + ph},
	}

	return Layout{Region: region, Plate: plate}
}

func (l *Layouter) size(text string) (float64, float64) {
	w, h := l.measure.Measure(text)
	return math.Max(w, 0), math.Max(h, 0)
}
