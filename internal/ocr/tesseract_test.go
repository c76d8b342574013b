package ocr

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/plate-reader/internal/plate"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// createPlateImage renders text in black on white and scales it up so
// Tesseract has enough pixels per glyph.
func createPlateImage(t *testing.T, text string, scale int) *image.RGBA {
	t.Helper()

	w := len(text)*7 + 40
	h := 40
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(small, 20, 25, text, color.Black)

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

func skipIfUnavailable(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, ErrDetectorUnavailable) ||
		strings.Contains(err.Error(), "tesseract") ||
		strings.Contains(err.Error(), "library") {
		t.Skip("Tesseract not available")
	}
}

func TestTesseractDetector_Detect(t *testing.T) {
	d := NewTesseractDetector(Options{Language: "eng"})
	img := createPlateImage(t, "MH12AB1234", 4)

	dets, err := d.Detect(context.Background(), img)
	if err != nil {
		skipIfUnavailable(t, err)
		t.Fatalf("Detect failed: %v", err)
	}

	for _, det := range dets {
		if det.Confidence < 0 || det.Confidence > 1 {
			t.Errorf("confidence out of range: %v", det.Confidence)
		}
		tl, br := det.Polygon.TopLeft(), det.Polygon.BottomRight()
		if tl.X > br.X || tl.Y > br.Y {
			t.Errorf("polygon not ordered: %+v", det.Polygon)
		}
		if det.Text != strings.TrimSpace(det.Text) {
			t.Errorf("text not trimmed: %q", det.Text)
		}
	}
}

func TestTesseractDetector_CanceledContext(t *testing.T) {
	d := NewTesseractDetector(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Detect(ctx, image.NewRGBA(image.Rect(0, 0, 10, 10)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestTesseractDetector_EmptyImage(t *testing.T) {
	d := NewTesseractDetector(Options{})

	_, err := d.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}

	_, err = d.Detect(context.Background(), nil)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("nil image: got %v, want ErrEmptyImage", err)
	}
}

func TestNewTesseractDetector_DefaultLanguage(t *testing.T) {
	d := NewTesseractDetector(Options{})
	if d.language != "eng" {
		t.Errorf("language: got %q, want eng", d.language)
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestBoxDetections(t *testing.T) {
	boxes := []gosseract.BoundingBox{
		{Box: image.Rect(10, 50, 200, 90), Word: "MHI2AB1234\n", Confidence: 91},
		{Box: image.Rect(0, 0, 5, 5), Word: "  \n", Confidence: 12},
		{Box: image.Rect(20, 100, 80, 120), Word: "IND", Confidence: 45.5},
	}

	got := boxDetections(boxes)
	if len(got) != 2 {
		t.Fatalf("got %d detections, want 2", len(got))
	}

	want := plate.RawDetection{
		Polygon:    plate.Polygon{{X: 10, Y: 50}, {X: 200, Y: 50}, {X: 200, Y: 90}, {X: 10, Y: 90}},
		Text:       "MHI2AB1234",
		Confidence: 0.91,
	}
	if got[0] != want {
		t.Errorf("first detection: got %+v, want %+v", got[0], want)
	}
	if got[1].Text != "IND" || got[1].Confidence != 0.455 {
		t.Errorf("second detection: got %+v", got[1])
	}
}

func TestNew_Backends(t *testing.T) {
	d, err := New(context.Background(), Options{Backend: "Tesseract"})
	if err != nil {
		t.Fatalf("New(tesseract): %v", err)
	}
	if _, ok := d.(*TesseractDetector); !ok {
		t.Errorf("New(tesseract): got %T", d)
	}

	d, err = New(context.Background(), Options{})
	if err != nil {
		t.Fatalf("New(default): %v", err)
	}
	if _, ok := d.(*TesseractDetector); !ok {
		t.Errorf("New(default): got %T", d)
	}

	_, err = New(context.Background(), Options{Backend: "easyocr"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New(easyocr): got %v, want ErrUnknownBackend", err)
	}
}
