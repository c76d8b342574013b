package ocr

import (
	"errors"
	"fmt"
)

// Common detector errors
var (
	// ErrDetectorUnavailable is returned when the OCR engine cannot be initialized.
	ErrDetectorUnavailable = errors.New("OCR engine unavailable")

	// ErrDetectionFailed is returned when the engine fails to process an image.
	ErrDetectionFailed = errors.New("text detection failed")

	// ErrMissingCredentials is returned when the Vision backend finds no credentials.
	ErrMissingCredentials = errors.New("missing Google Cloud credentials: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS environment variable")

	// ErrEmptyImage is returned for a nil or zero-sized image.
	ErrEmptyImage = errors.New("image is empty")

	// ErrUnknownBackend is returned by New for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown OCR backend")
)

// OCRError wraps errors with the detector operation that failed.
type OCRError struct {
	// Op is the operation that failed (e.g., "Detect", "NewVisionDetector").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *OCRError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OCRError) Unwrap() error {
	return e.Err
}

// Is reports whether the wrapped error matches target.
func (e *OCRError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewOCRError creates a new OCRError.
func NewOCRError(op string, err error, details string) *OCRError {
	return &OCRError{
		Op:      op,
		Err:     err,
		Details: details,
	}
}

// WrapOCRError wraps err as an OCRError unless it already is one.
func WrapOCRError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var ocrErr *OCRError
	if errors.As(err, &ocrErr) {
		return err
	}

	return NewOCRError(op, err, details)
}
