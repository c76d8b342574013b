// Package config reads plate-reader settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/plate-reader/internal/imaging"
	"github.com/ironsheep/plate-reader/internal/logger"
	"github.com/ironsheep/plate-reader/internal/ocr"
	"github.com/ironsheep/plate-reader/internal/plate"
)

type Config struct {
	// Batch input and output
	InputDir     string
	ReportPath   string
	AnnotatedDir string

	// Preprocessing and detection
	ResizeWidth    int
	Detector       string
	OCRLanguage    string
	OCRWhitelist   string
	TessdataPrefix string
	MinLength      int

	// Annotation
	FontSize float64

	// MCP server image cache
	CacheSize int

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load builds a Config from the environment. Call godotenv.Load first to
// pick up a .env file.
func Load() (*Config, error) {
	config := &Config{
		InputDir:       getEnv("PLATE_INPUT_DIR", "./data/"),
		ReportPath:     getEnv("PLATE_REPORT_PATH", "ocr_results.csv"),
		AnnotatedDir:   getEnv("PLATE_ANNOTATED_DIR", ""),
		Detector:       strings.ToLower(getEnv("PLATE_DETECTOR", ocr.BackendTesseract)),
		OCRLanguage:    getEnv("PLATE_OCR_LANGUAGE", "eng"),
		OCRWhitelist:   getEnv("PLATE_OCR_WHITELIST", ""),
		TessdataPrefix: getEnv("PLATE_TESSDATA_PREFIX", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}

	var err error
	if config.ResizeWidth, err = getEnvInt("PLATE_RESIZE_WIDTH", imaging.DefaultWidth); err != nil {
		return nil, err
	}
	if config.MinLength, err = getEnvInt("PLATE_MIN_LENGTH", plate.DefaultMinLength); err != nil {
		return nil, err
	}
	if config.CacheSize, err = getEnvInt("PLATE_CACHE_SIZE", imaging.DefaultCacheSize); err != nil {
		return nil, err
	}
	if config.FontSize, err = getEnvFloat("PLATE_FONT_SIZE", imaging.DefaultFontSize); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks values that may have been overridden by flags after Load.
func (c *Config) Validate() error {
	switch c.Detector {
	case ocr.BackendTesseract, ocr.BackendVision:
	default:
		return fmt.Errorf("PLATE_DETECTOR must be %q or %q, got %q", ocr.BackendTesseract, ocr.BackendVision, c.Detector)
	}
	if c.ResizeWidth < 0 {
		return fmt.Errorf("PLATE_RESIZE_WIDTH must not be negative, got %d", c.ResizeWidth)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("PLATE_MIN_LENGTH must be at least 1, got %d", c.MinLength)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("PLATE_CACHE_SIZE must be at least 1, got %d", c.CacheSize)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("PLATE_FONT_SIZE must be positive, got %g", c.FontSize)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// OCROptions returns the detector options for the configured backend.
func (c *Config) OCROptions() ocr.Options {
	return ocr.Options{
		Backend:        c.Detector,
		Language:       c.OCRLanguage,
		Whitelist:      c.OCRWhitelist,
		TessdataPrefix: c.TessdataPrefix,
	}
}

// PipelineOptions returns the core pipeline options with the built-in
// correction and region tables.
func (c *Config) PipelineOptions(m plate.Measurer) plate.Options {
	return plate.Options{
		MinLength: c.MinLength,
		Measurer:  m,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
