package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Load reads .env when present, then the process environment, then any
// parameters stored under AWS_SSM_PATH.
func Load(ctx context.Context) (map[string]string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	c := New()

	prefix := GetString(c, "AWS_SSM_PATH", "")
	if prefix == "" {
		return c, nil
	}

	source, err := NewSSMSource(ctx)
	if err != nil {
		return nil, err
	}
	n, err := OverlaySSM(ctx, c, source, prefix)
	if err != nil {
		return nil, err
	}
	log.Info().Int("parameters", n).Str("path", prefix).Msg("Loaded parameters from SSM")
	return c, nil
}

// SetupLogging configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT.
func SetupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if GetString(c, "LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
