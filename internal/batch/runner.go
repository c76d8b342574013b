// Package batch scans a directory of vehicle photos and reports every
// plausible plate reading found in them.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ironsheep/plate-reader/internal/imaging"
	"github.com/ironsheep/plate-reader/internal/ocr"
	"github.com/ironsheep/plate-reader/internal/plate"
)

// ErrUnreadableImage marks an input file that could not be decoded.
var ErrUnreadableImage = errors.New("unreadable image")

// Sink receives admitted records in detection order.
type Sink interface {
	Write(rec plate.Record) error
}

// Summary counts what a run did.
type Summary struct {
	Images     int `json:"images"`
	Skipped    int `json:"skipped"`
	Detections int `json:"detections"`
	Records    int `json:"records"`
}

// Options wires a Runner to its collaborators. Detector, Pipeline and Sink
// are required.
type Options struct {
	Detector ocr.Detector
	Pipeline *plate.Pipeline
	Sink     Sink

	// ResizeWidth is passed to imaging.Preprocess. Zero keeps the input size.
	ResizeWidth int

	// AnnotatedDir receives one annotated PNG per image when both it and
	// Annotator are set.
	AnnotatedDir string
	Annotator    *imaging.Annotator

	Logger zerolog.Logger
}

// Runner processes images strictly one at a time.
type Runner struct {
	opts Options
	log  zerolog.Logger
}

// NewRunner validates opts and returns a Runner.
func NewRunner(opts Options) (*Runner, error) {
	switch {
	case opts.Detector == nil:
		return nil, errors.New("batch: detector is required")
	case opts.Pipeline == nil:
		return nil, errors.New("batch: pipeline is required")
	case opts.Sink == nil:
		return nil, errors.New("batch: sink is required")
	}
	return &Runner{opts: opts, log: opts.Logger}, nil
}

// ImageFiles lists the supported image files directly inside dir in
// lexical order. Subdirectories and other files are ignored.
func ImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !imaging.IsSupported(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Run processes every image in dir. Images that cannot be decoded or
// detected are logged and skipped; a sink failure stops the run and is
// returned together with the summary so far.
func (r *Runner) Run(ctx context.Context, dir string) (*Summary, error) {
	files, err := ImageFiles(dir)
	if err != nil {
		return nil, err
	}

	r.log.Info().Str("dir", dir).Int("images", len(files)).Msg("Starting scan")

	summary := &Summary{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.Images++
		results, detections, err := r.ProcessFile(ctx, path)
		summary.Detections += detections
		summary.Records += len(results)
		if err == nil {
			continue
		}

		var sinkErr *SinkError
		if errors.As(err, &sinkErr) {
			return summary, err
		}
		summary.Skipped++
		r.log.Warn().Err(err).Str("image", filepath.Base(path)).Msg("Skipping image")
	}

	r.log.Info().
		Int("images", summary.Images).
		Int("skipped", summary.Skipped).
		Int("detections", summary.Detections).
		Int("records", summary.Records).
		Msg("Scan complete")

	return summary, nil
}

// SinkError wraps a failure to persist a record. It is never treated as a
// per-image skip.
type SinkError struct {
	ImageID string
	Err     error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("report write failed for %s: %v", e.ImageID, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// ProcessFile runs one image through detection, the pipeline, the sink and
// the optional annotation writer. It returns the results that reached the
// sink and the number of raw detections.
func (r *Runner) ProcessFile(ctx context.Context, path string) ([]plate.Result, int, error) {
	imageID := filepath.Base(path)

	img, err := imaging.Load(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, imageID, err)
	}
	prepared := imaging.Preprocess(img, r.opts.ResizeWidth)

	detections, err := r.opts.Detector.Detect(ctx, prepared.Gray)
	if err != nil {
		return nil, 0, fmt.Errorf("detection failed for %s: %w", imageID, err)
	}

	results := r.opts.Pipeline.Process(imageID, detections)
	for i, res := range results {
		if err := r.opts.Sink.Write(res.Record); err != nil {
			return results[:i], len(detections), &SinkError{ImageID: imageID, Err: err}
		}
		r.log.Info().
			Str("image", imageID).
			Str("text", res.Record.Text).
			Str("region", res.Record.Region).
			Float64("confidence", res.Record.Confidence).
			Msg("Detected plate")
	}

	if r.opts.AnnotatedDir != "" && r.opts.Annotator != nil {
		out := r.opts.Annotator.Render(prepared.Color, results)
		saved, err := imaging.SaveAnnotated(out, r.opts.AnnotatedDir, imageID)
		if err != nil {
			r.log.Warn().Err(err).Str("image", imageID).Msg("Failed to write annotated image")
		} else {
			r.log.Debug().Str("image", imageID).Str("path", saved).Msg("Annotated image written")
		}
	}

	return results, len(detections), nil
}
