package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/plate-reader/internal/plate"
)

// Style controls how detections are drawn.
type Style struct {
	// Outline is the color of the rectangle around each plate.
	Outline color.Color

	// Fill is the background color of the label boxes.
	Fill color.Color

	// Text is the label text color.
	Text color.Color

	// Thickness is the outline width in pixels.
	Thickness int
}

// DefaultStyle draws blue outlines and label backgrounds with white text.
func DefaultStyle() Style {
	blue, _ := ParseColor("#0000FF")
	white, _ := ParseColor("#FFFFFF")
	return Style{
		Outline:   blue,
		Fill:      blue,
		Text:      white,
		Thickness: 2,
	}
}

// ParseColor parses a "#RRGGBB" hex color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c.Clamped(), nil
}

// Annotator renders plate results onto images.
type Annotator struct {
	face  font.Face
	style Style
}

// NewAnnotator creates an Annotator drawing label text with face.
func NewAnnotator(face font.Face, style Style) *Annotator {
	if style.Thickness <= 0 {
		style.Thickness = 1
	}
	return &Annotator{face: face, style: style}
}

// Render returns a copy of img with each result drawn on it: an outline
// from the polygon's top-left to bottom-right corner, and the region and
// plate labels in their layout boxes. Results without a layout only get
// the outline.
func (a *Annotator) Render(img image.Image, results []plate.Result) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	for _, r := range results {
		tl, br := r.Polygon.TopLeft(), r.Polygon.BottomRight()
		a.drawOutline(out, toRect(tl, br))

		if r.Layout == nil {
			continue
		}
		a.drawLabel(out, r.Layout.Region, r.Record.Region)
		a.drawLabel(out, r.Layout.Plate, r.Record.Text)
	}

	return out
}

func (a *Annotator) drawOutline(dst *image.RGBA, r image.Rectangle) {
	src := image.NewUniform(a.style.Outline)
	t := a.style.Thickness
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t),
		image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y),
		image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
	}
}

func (a *Annotator) drawLabel(dst *image.RGBA, box plate.LayoutBox, text string) {
	r := toRect(box.Origin, box.Max())
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(a.style.Fill), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(a.style.Text),
		Face: a.face,
		Dot:  fixed.P(round(box.TextOrigin.X), round(box.TextOrigin.Y)),
	}
	d.DrawString(text)
}

// SaveAnnotated writes img to dir/<name>.png, creating dir if needed, and
// returns the written path.
func SaveAnnotated(img image.Image, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Base(name)
	path := filepath.Join(dir, base[:len(base)-len(filepath.Ext(base))]+".png")
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save annotated image: %w", err)
	}
	return path, nil
}

func toRect(a, b plate.Point) image.Rectangle {
	return image.Rect(round(a.X), round(a.Y), round(b.X), round(b.Y))
}

func round(v float64) int {
	return int(math.Round(v))
}
