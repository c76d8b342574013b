package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// DefaultWidth is the width every input image is scaled to before detection.
const DefaultWidth = 800

// Prepared holds the two views of an input image used by a scan.
type Prepared struct {
	// Color is the resized image that annotations are drawn on.
	Color image.Image

	// Gray is the grayscale copy handed to the detector.
	Gray image.Image
}

// Preprocess scales img to width pixels, keeping the aspect ratio, and
// derives a grayscale copy. A width of zero or less keeps the original size.
//
// Detection polygons refer to the resized image, so annotations must be
// drawn on Prepared.Color rather than on img.
func Preprocess(img image.Image, width int) Prepared {
	resized := img
	if width > 0 && img.Bounds().Dx() != width {
		resized = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return Prepared{
		Color: resized,
		Gray:  effect.Grayscale(resized),
	}
}
