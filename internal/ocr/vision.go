package ocr

import (
	"context"
	"fmt"
	"image"
	"os"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"github.com/ironsheep/plate-reader/internal/plate"
)

// VisionDetector detects text with the Google Cloud Vision API.
type VisionDetector struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionDetector creates a Vision detector with credentials from the
// environment. GOOGLE_CREDENTIALS (inline JSON) takes precedence over
// GOOGLE_APPLICATION_CREDENTIALS (file path); without either the default
// application credentials are tried.
func NewVisionDetector(ctx context.Context) (*VisionDetector, error) {
	const op = "NewVisionDetector"

	var client *vision.ImageAnnotatorClient
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_CREDENTIALS")
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_APPLICATION_CREDENTIALS")
		}
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
		if err != nil {
			return nil, WrapOCRError(op, ErrMissingCredentials, "no credentials found in environment")
		}
	}

	return &VisionDetector{client: client}, nil
}

// NewVisionDetectorWithClient wraps an existing client.
func NewVisionDetectorWithClient(client *vision.ImageAnnotatorClient) *VisionDetector {
	return &VisionDetector{client: client}
}

// Detect sends img to Vision DOCUMENT_TEXT_DETECTION and returns one
// detection per text line, in reading order.
func (v *VisionDetector) Detect(ctx context.Context, img image.Image) ([]plate.RawDetection, error) {
	const op = "Detect"

	data, err := encodePNG(img)
	if err != nil {
		return nil, WrapOCRError(op, err, "")
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: data},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, WrapOCRError(op, ErrDetectionFailed, fmt.Sprintf("Vision API call failed: %v", err))
	}
	if len(resp.Responses) == 0 {
		return nil, WrapOCRError(op, ErrDetectionFailed, "no response from Vision API")
	}

	imgResp := resp.Responses[0]
	if imgResp.Error != nil {
		return nil, WrapOCRError(op, ErrDetectionFailed, fmt.Sprintf("Vision API error: %s", imgResp.Error.Message))
	}

	return visionDetections(imgResp.GetFullTextAnnotation()), nil
}

// Close closes the underlying Vision client.
func (v *VisionDetector) Close() error {
	if v.client != nil {
		return v.client.Close()
	}
	return nil
}

// visionDetections splits the full text annotation into lines.
//
// Words are joined with the spaces Vision detected between them, and a line
// ends at an end-of-line break or at the end of its paragraph. A line that
// is a whole paragraph takes the paragraph's bounding box and confidence;
// otherwise the polygon is the rectangle around its words and the
// confidence is their mean.
func visionDetections(full *visionpb.TextAnnotation) []plate.RawDetection {
	var detections []plate.RawDetection
	for _, page := range full.GetPages() {
		for _, block := range page.GetBlocks() {
			for _, para := range block.GetParagraphs() {
				detections = append(detections, paragraphLines(para)...)
			}
		}
	}
	return detections
}

func paragraphLines(para *visionpb.Paragraph) []plate.RawDetection {
	words := para.GetWords()

	var lines []plate.RawDetection
	var text strings.Builder
	start := 0

	flush := func(end int) {
		line := strings.TrimSpace(text.String())
		text.Reset()
		lineWords := words[start:end]
		start = end
		if line == "" {
			return
		}

		det := plate.RawDetection{Text: line}
		if len(lineWords) == len(words) {
			det.Polygon = visionPolygon(para.GetBoundingBox())
			det.Confidence = float64(para.GetConfidence())
		} else {
			det.Polygon = wordsPolygon(lineWords)
			det.Confidence = meanConfidence(lineWords)
		}
		lines = append(lines, det)
	}

	for i, w := range words {
		lineEnd := false
		for _, sym := range w.GetSymbols() {
			text.WriteString(sym.GetText())
			switch sym.GetProperty().GetDetectedBreak().GetType() {
			case visionpb.TextAnnotation_DetectedBreak_SPACE, visionpb.TextAnnotation_DetectedBreak_SURE_SPACE:
				text.WriteByte(' ')
			case visionpb.TextAnnotation_DetectedBreak_EOL_SURE_SPACE,
				visionpb.TextAnnotation_DetectedBreak_HYPHEN,
				visionpb.TextAnnotation_DetectedBreak_LINE_BREAK:
				lineEnd = true
			}
		}
		if lineEnd {
			flush(i + 1)
		}
	}
	flush(len(words))

	return lines
}

// wordsPolygon returns the rectangle around every vertex of words.
func wordsPolygon(words []*visionpb.Word) plate.Polygon {
	var vertices []*visionpb.Vertex
	for _, w := range words {
		vertices = append(vertices, w.GetBoundingBox().GetVertices()...)
	}
	return boundingRect(vertices)
}

func meanConfidence(words []*visionpb.Word) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += float64(w.GetConfidence())
	}
	return sum / float64(len(words))
}

func visionPolygon(poly *visionpb.BoundingPoly) plate.Polygon {
	vertices := poly.GetVertices()
	if len(vertices) == 4 {
		var p plate.Polygon
		for i, v := range vertices {
			p[i] = plate.Point{X: float64(v.GetX()), Y: float64(v.GetY())}
		}
		return p
	}
	return boundingRect(vertices)
}

func boundingRect(vertices []*visionpb.Vertex) plate.Polygon {
	if len(vertices) == 0 {
		return plate.Polygon{}
	}

	minX, minY := vertices[0].GetX(), vertices[0].GetY()
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX = min(minX, v.GetX())
		minY = min(minY, v.GetY())
		maxX = max(maxX, v.GetX())
		maxY = max(maxY, v.GetY())
	}
	return plate.RectPolygon(float64(minX), float64(minY), float64(maxX), float64(maxY))
}

func hasVisionCredentials() bool {
	return os.Getenv("GOOGLE_CREDENTIALS") != "" || os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != ""
}
