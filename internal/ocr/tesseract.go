package ocr

import (
	"context"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/plate-reader/internal/plate"
)

// TesseractDetector detects text lines with a local Tesseract engine.
//
// Each call creates its own gosseract client, so a TesseractDetector can be
// shared between goroutines.
type TesseractDetector struct {
	language       string
	whitelist      string
	tessdataPrefix string
}

// NewTesseractDetector creates a Tesseract-backed detector. An empty
// language defaults to English.
func NewTesseractDetector(opts Options) *TesseractDetector {
	lang := opts.Language
	if lang == "" {
		lang = "eng"
	}
	return &TesseractDetector{
		language:       lang,
		whitelist:      opts.Whitelist,
		tessdataPrefix: opts.TessdataPrefix,
	}
}

// Detect runs line-level OCR on img.
//
// The engine cannot be interrupted once started; ctx is only checked before
// recognition begins.
//
// Each text line becomes one detection whose polygon is the line's
// bounding rectangle. Tesseract reports confidence as a percentage; it is
// scaled to [0, 1]. Lines that are blank after trimming are skipped.
func (d *TesseractDetector) Detect(ctx context.Context, img image.Image) ([]plate.RawDetection, error) {
	const op = "Detect"

	if err := ctx.Err(); err != nil {
		return nil, WrapOCRError(op, err, "canceled before recognition")
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, WrapOCRError(op, err, "")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if d.tessdataPrefix != "" {
		if err := client.SetTessdataPrefix(d.tessdataPrefix); err != nil {
			return nil, WrapOCRError(op, ErrDetectorUnavailable, "failed to set tessdata path: "+err.Error())
		}
	}

	if err := client.SetLanguage(d.language); err != nil {
		return nil, WrapOCRError(op, ErrDetectorUnavailable, "failed to set language: "+err.Error())
	}

	if d.whitelist != "" {
		if err := client.SetWhitelist(d.whitelist); err != nil {
			return nil, WrapOCRError(op, ErrDetectorUnavailable, "failed to set whitelist: "+err.Error())
		}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, WrapOCRError(op, ErrDetectionFailed, "failed to set image: "+err.Error())
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, WrapOCRError(op, ErrDetectionFailed, err.Error())
	}

	return boxDetections(boxes), nil
}

// Close is a no-op; clients are released after every Detect call.
func (d *TesseractDetector) Close() error {
	return nil
}

// boxDetections converts Tesseract bounding boxes into raw detections.
func boxDetections(boxes []gosseract.BoundingBox) []plate.RawDetection {
	detections := make([]plate.RawDetection, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		detections = append(detections, plate.RawDetection{
			Polygon: plate.RectPolygon(
				float64(box.Box.Min.X), float64(box.Box.Min.Y),
				float64(box.Box.Max.X), float64(box.Box.Max.Y),
			),
			Text:       text,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}
	return detections
}

// TesseractVersion returns the installed Tesseract version.
func TesseractVersion() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// OCRInfo contains information about the OCR subsystem.
type OCRInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
	Backend   string `json:"backend"`
}

// GetOCRInfo reports whether the named backend can be used.
func GetOCRInfo(backend string) OCRInfo {
	switch strings.ToLower(backend) {
	case BackendVision:
		return OCRInfo{
			Available: hasVisionCredentials(),
			Backend:   "google cloud vision",
		}
	default:
		version := TesseractVersion()
		if version == "" {
			return OCRInfo{
				Available: false,
				Error:     ErrDetectorUnavailable.Error(),
				Backend:   "gosseract",
			}
		}
		return OCRInfo{
			Available: true,
			Version:   version,
			Backend:   "gosseract",
		}
	}
}
