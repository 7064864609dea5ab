package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global zerolog logger. Production emits JSON lines,
// every other environment gets the human-friendly console writer.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = New(cfg, os.Stdout)
	log.Trace().Msg("Zerolog initialized.")
}

// New builds a timestamped logger writing to out in the format InitLogger uses.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	if cfg == nil || !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).With().Timestamp().Str("app", appName(cfg)).Logger()
}

func appName(cfg *config.Config) string {
	if cfg == nil || cfg.App.Name == "" {
		return "hotel-tracker"
	}

	return cfg.App.Name
}

// WithField returns ctx carrying the request logger extended with key=value.
func WithField(ctx context.Context, key, value string) context.Context {
	l := Ctx(ctx).With().Str(key, value).Logger()

	return l.WithContext(ctx)
}

// Ctx returns the logger attached by WithField, or the global logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}

	return l
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
