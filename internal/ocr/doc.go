// Package ocr provides the text detectors that feed the plate pipeline.
//
// A Detector turns a decoded image into raw detections: a bounding polygon
// ordered top-left, top-right, bottom-right, bottom-left, the recognized
// string and a confidence in [0, 1]. Detections are returned in the order
// the engine reports them; callers must preserve that order.
//
// # Backends
//
//   - "tesseract": local Tesseract OCR through gosseract/v2, one detection
//     per recognized text line.
//   - "vision": Google Cloud Vision DOCUMENT_TEXT_DETECTION, one detection
//     per text line of the full text annotation.
//
// # Prerequisites
//
// The Tesseract backend needs the engine and its language data installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// A custom tessdata directory can be selected with Options.TessdataPrefix.
//
// The Vision backend reads credentials from GOOGLE_CREDENTIALS (inline JSON)
// or GOOGLE_APPLICATION_CREDENTIALS (file path), falling back to the default
// application credentials.
//
// # Error Handling
//
// Failures are returned as *OCRError values wrapping one of the sentinel
// errors in this package, so callers can test them with errors.Is.
package ocr
