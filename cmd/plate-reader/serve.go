package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/plate-reader/internal/logger"
	"github.com/ironsheep/plate-reader/internal/ocr"
	"github.com/ironsheep/plate-reader/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdin/stdout",
	Long: `Serve exposes plate reading as MCP tools (plate_read, plate_annotate,
plate_correct, plate_resolve_region, plate_regions, cache_clear, ocr_info) over
JSON-RPC 2.0 on stdin/stdout. Configure it in your MCP client.

PLATE_CACHE_SIZE bounds how many decoded photos are kept between calls
(default: 16).

Logs are written to stderr unless LOG_OUTPUT names a file, because stdout
carries the protocol.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("detector", "", "Text detector (tesseract or vision)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("detector") {
		cfg.Detector, _ = cmd.Flags().GetString("detector")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if cfg.LogOutput == "stdout" {
		logCfg := cfg.GetLoggerConfig()
		logCfg.Output = "stderr"
		if err := logger.Setup(logCfg); err != nil {
			return err
		}
	}
	log := logger.WithComponent("server")

	ctx, cancel := signalContext(log)
	defer cancel()

	detector, err := ocr.New(ctx, cfg.OCROptions())
	if err != nil {
		return err
	}
	defer detector.Close()

	render, err := newRendering(cfg)
	if err != nil {
		return err
	}
	defer render.Close()

	log.Info().
		Str("version", Version).
		Str("detector", cfg.Detector).
		Msg("Plate reader MCP server starting")

	srv := server.New(server.Options{
		Pipeline:    render.pipeline,
		Detector:    detector,
		Annotator:   render.annotator,
		Backend:     cfg.Detector,
		ResizeWidth: cfg.ResizeWidth,
		CacheSize:   cfg.CacheSize,
		Version:     Version,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Logger:      log,
	})
	return srv.Run(ctx)
}
