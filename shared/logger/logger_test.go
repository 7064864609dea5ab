package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureGlobal swaps the global logger for one writing to a buffer.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})

	return &buf
}

func TestInitLogger(t *testing.T) {
	captureGlobal(t)

	logger.InitLogger(&config.Config{})

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		appName  string
		wantJSON bool
		wantApp  string
	}{
		{name: "production writes json", env: constant.ServerEnvProduction, appName: "tracker-api", wantJSON: true, wantApp: "tracker-api"},
		{name: "development writes console lines", env: constant.ServerEnvDevelopment, wantJSON: false, wantApp: "hotel-tracker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.App.Name = tt.appName

			var buf bytes.Buffer

			l := logger.New(cfg, &buf)
			l.Info().Str("bookingID", "b1").Msg("booking reevaluated")

			var line map[string]any
			err := json.Unmarshal(buf.Bytes(), &line)

			if tt.wantJSON {
				require.NoError(t, err)
				assert.Equal(t, tt.wantApp, line["app"])
				assert.Equal(t, "b1", line["bookingID"])

				return
			}

			assert.Error(t, err)
			assert.Contains(t, buf.String(), "booking reevaluated")
			assert.Contains(t, buf.String(), "app="+tt.wantApp)
		})
	}
}

func TestCtx(t *testing.T) {
	buf := captureGlobal(t)

	t.Run("falls back to the global logger", func(t *testing.T) {
		buf.Reset()

		logger.Ctx(context.Background()).Info().Msg("no request")

		assert.Contains(t, buf.String(), "no request")
	})

	t.Run("carries request fields", func(t *testing.T) {
		buf.Reset()

		ctx := logger.WithField(context.Background(), "request_id", "req-1")
		ctx = logger.WithField(ctx, "actor", "chris")

		logger.Ctx(ctx).Info().Msg("request handled")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "req-1", line["request_id"])
		assert.Equal(t, "chris", line["actor"])
	})
}

func TestErrorWithStack(t *testing.T) {
	buf := captureGlobal(t)

	logger.ErrorWithStack(errors.New("failed to match promotions"))

	assert.Contains(t, buf.String(), "failed to match promotions")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     zerolog.Level
	}{
		{logLevel: "debug", want: zerolog.DebugLevel},
		{logLevel: "info", want: zerolog.InfoLevel},
		{logLevel: "warn", want: zerolog.WarnLevel},
		{logLevel: "disabled", want: zerolog.Disabled},
		{logLevel: "verbose", want: zerolog.TraceLevel},
		{logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.logLevel, func(t *testing.T) {
			captureGlobal(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
