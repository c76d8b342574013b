package ocr

import (
	"errors"
	"strings"
	"testing"
)

func TestOCRError(t *testing.T) {
	err := NewOCRError("Detect", ErrDetectionFailed, "engine crashed")

	if !errors.Is(err, ErrDetectionFailed) {
		t.Error("errors.Is should match the wrapped sentinel")
	}
	if errors.Is(err, ErrEmptyImage) {
		t.Error("errors.Is matched an unrelated sentinel")
	}
	if msg := err.Error(); !strings.Contains(msg, "Detect") || !strings.Contains(msg, "engine crashed") {
		t.Errorf("Error(): %q", msg)
	}

	noDetails := NewOCRError("Detect", ErrEmptyImage, "")
	if noDetails.Error() != "ocr: Detect failed: image is empty" {
		t.Errorf("Error(): %q", noDetails.Error())
	}
}

func TestWrapOCRError(t *testing.T) {
	if WrapOCRError("op", nil, "x") != nil {
		t.Error("wrapping nil should return nil")
	}

	inner := NewOCRError("inner", ErrMissingCredentials, "")
	if got := WrapOCRError("outer", inner, "ignored"); got != error(inner) {
		t.Error("an OCRError should not be wrapped twice")
	}

	var ocrErr *OCRError
	if !errors.As(WrapOCRError("op", errors.New("boom"), ""), &ocrErr) || ocrErr.Op != "op" {
		t.Error("plain errors should be wrapped as OCRError")
	}
}
