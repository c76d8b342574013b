package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/plate-reader/internal/config"
	"github.com/ironsheep/plate-reader/internal/imaging"
	"github.com/ironsheep/plate-reader/internal/logger"
	"github.com/ironsheep/plate-reader/internal/plate"
)

var (
	appConfig *config.Config
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "plate-reader",
	Short: "Read vehicle registration plates from photos",
	Long: `plate-reader detects text in vehicle photos, corrects common OCR misreads,
keeps readings long enough to be full registration plates, resolves the
issuing region from the plate prefix and writes one CSV row per plate.

Settings come from the environment (or a .env file) and can be overridden
with flags. See "plate-reader scan --help" for the keys.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// requireConfig returns the environment configuration loaded at startup.
func requireConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	if appConfig == nil {
		return config.Load()
	}
	return appConfig, nil
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext(log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

// rendering holds the font-backed pieces shared by scan and serve.
type rendering struct {
	measurer  *imaging.FontMeasurer
	pipeline  *plate.Pipeline
	annotator *imaging.Annotator
}

func newRendering(cfg *config.Config) (*rendering, error) {
	measurer, err := imaging.NewFontMeasurer(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	return &rendering{
		measurer:  measurer,
		pipeline:  plate.NewPipeline(cfg.PipelineOptions(measurer)),
		annotator: imaging.NewAnnotator(measurer.Face(), imaging.DefaultStyle()),
	}, nil
}

func (r *rendering) Close() error {
	return r.measurer.Close()
}
