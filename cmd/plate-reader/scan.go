package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/plate-reader/internal/batch"
	"github.com/ironsheep/plate-reader/internal/config"
	"github.com/ironsheep/plate-reader/internal/logger"
	"github.com/ironsheep/plate-reader/internal/ocr"
	"github.com/ironsheep/plate-reader/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan [input-dir]",
	Short: "Read the plates in every image of a directory and write a CSV report",
	Long: `Scan processes every .jpg, .jpeg and .png file directly inside the input
directory in name order. Each image is resized, converted to grayscale and
passed to the text detector. Readings are corrected, filtered by length and
tagged with their region before being appended to the report.

Images that cannot be decoded or detected are skipped. A failure to write
the report stops the scan.

Environment variables (flags take precedence):
  PLATE_INPUT_DIR       - Input directory (default: ./data/)
  PLATE_REPORT_PATH     - CSV report path (default: ocr_results.csv)
  PLATE_ANNOTATED_DIR   - Write annotated PNGs here (default: disabled)
  PLATE_RESIZE_WIDTH    - Detection width in pixels, 0 keeps the size (default: 800)
  PLATE_DETECTOR        - tesseract or vision (default: tesseract)
  PLATE_OCR_LANGUAGE    - Tesseract language (default: eng)
  PLATE_OCR_WHITELIST   - Tesseract character whitelist (default: none)
  PLATE_TESSDATA_PREFIX - Tesseract data directory
  PLATE_MIN_LENGTH      - Readings must be longer than this, at least 1 (default: 8)
  PLATE_FONT_SIZE       - Annotation label size (default: 22)

The vision detector also needs GOOGLE_APPLICATION_CREDENTIALS or
GOOGLE_CREDENTIALS.`,
	Example: `  # Scan ./data/ into ocr_results.csv
  plate-reader scan

  # Scan another folder with annotated output
  plate-reader scan ./photos -o plates.csv --annotated ./annotated

  # Use Google Cloud Vision
  plate-reader scan ./photos --detector vision`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("output", "o", "", "CSV report path")
	scanCmd.Flags().String("annotated", "", "Directory for annotated images")
	scanCmd.Flags().Int("width", 0, "Detection width in pixels (0 keeps the size)")
	scanCmd.Flags().String("detector", "", "Text detector (tesseract or vision)")
	scanCmd.Flags().Int("min-length", 0, "Readings must be longer than this (at least 1)")
	scanCmd.Flags().Float64("font-size", 0, "Annotation label size")
}

func runScan(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("scan")

	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	if err := applyScanFlags(cmd, cfg, args); err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	detector, err := ocr.New(ctx, cfg.OCROptions())
	if err != nil {
		if errors.Is(err, ocr.ErrMissingCredentials) {
			return fmt.Errorf("%w. Please set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS", err)
		}
		return err
	}
	defer detector.Close()

	render, err := newRendering(cfg)
	if err != nil {
		return err
	}
	defer render.Close()

	sink, err := report.Create(cfg.ReportPath)
	if err != nil {
		return err
	}

	runner, err := batch.NewRunner(batch.Options{
		Detector:     detector,
		Pipeline:     render.pipeline,
		Sink:         sink,
		ResizeWidth:  cfg.ResizeWidth,
		AnnotatedDir: cfg.AnnotatedDir,
		Annotator:    render.annotator,
		Logger:       logger.WithComponent("batch"),
	})
	if err != nil {
		sink.Close()
		return err
	}

	summary, runErr := runner.Run(ctx, cfg.InputDir)
	if err := sink.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	log.Info().
		Str("report", cfg.ReportPath).
		Int("rows", sink.Rows()).
		Msg("OCR results saved")

	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d images (%d skipped): %d detections, %d plates written to %s\n",
		summary.Images, summary.Skipped, summary.Detections, summary.Records, cfg.ReportPath)
	return nil
}

// applyScanFlags overrides cfg with any flags set on the command line.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	flags := cmd.Flags()

	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if flags.Changed("output") {
		cfg.ReportPath, _ = flags.GetString("output")
	}
	if flags.Changed("annotated") {
		cfg.AnnotatedDir, _ = flags.GetString("annotated")
	}
	if flags.Changed("width") {
		cfg.ResizeWidth, _ = flags.GetInt("width")
	}
	if flags.Changed("detector") {
		cfg.Detector, _ = flags.GetString("detector")
	}
	if flags.Changed("min-length") {
		cfg.MinLength, _ = flags.GetInt("min-length")
	}
	if flags.Changed("font-size") {
		cfg.FontSize, _ = flags.GetFloat64("font-size")
	}

	return cfg.Validate()
}
