package plate

// Point is a position in image pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is the bounding quadrilateral of a detection, ordered
// top-left, top-right, bottom-right, bottom-left.
type Polygon [4]Point

// RectPolygon builds the polygon of an axis-aligned rectangle.
func RectPolygon(x1, y1, x2, y2 float64) Polygon {
	return Polygon{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
	}
}

func (p Polygon) TopLeft() Point     { return p[0] }
func (p Polygon) TopRight() Point    { return p[1] }
func (p Polygon) BottomRight() Point { return p[2] }
func (p Polygon) BottomLeft() Point  { return p[3] }

// RawDetection is one unprocessed OCR result as returned by a detector.
type RawDetection struct {
	// Polygon locates the text in the image the detector was given.
	Polygon Polygon `json:"polygon"`

	// Text is the string exactly as the detector read it.
	Text string `json:"text"`

	// Confidence is the detector's score in [0, 1]. It is never rescaled.
	Confidence float64 `json:"confidence"`
}
