// Package imaging handles everything the plate reader does with pixels.
//
// It loads JPEG and PNG inputs (honouring EXIF orientation), prepares them
// for detection, measures label text and renders annotated copies of the
// processed images.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Detection polygons and layout boxes produced for a Prepared image refer to
// its resized Color view. Annotations must be drawn on that view.
//
// # Preprocessing
//
// Preprocess scales every input to DefaultWidth pixels wide (aspect ratio
// preserved, Lanczos filter) and derives a grayscale copy for the detector.
//
// # Text Measurement
//
// FontMeasurer implements plate.Measurer with the bundled Go Bold face, so
// layout computation and rendering agree on label sizes.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
// An Annotator shares its font face and must not render concurrently.
package imaging
