package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddleware(t *testing.T, cfg *config.Config) middleware.AppMiddleware {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
}

func TestRequestID(t *testing.T) {
	m := newMiddleware(t, &config.Config{})

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates an id when absent"},
		{name: "keeps the caller id", incoming: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string

			handler := m.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.incoming != "" {
				req.Header.Set(constant.RequestHeaderRequestID, tt.incoming)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}
}

func TestActor(t *testing.T) {
	m := newMiddleware(t, &config.Config{})

	var actor string

	handler := m.Actor(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		actor = shared.Actor(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, constant.ActorAnonymous, actor)

	req = httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderActor, "traveller")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "traveller", actor)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	m := newMiddleware(t, cfg)
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	remaining := make([]string, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/promotions", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.7, 172.16.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		remaining = append(remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, []string{"1", "0", ""}, remaining)
}

func TestRateLimitDisabled(t *testing.T) {
	m := newMiddleware(t, &config.Config{})
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/promotions", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestAccessLogPassesStatusThrough(t *testing.T) {
	m := newMiddleware(t, &config.Config{})
	handler := m.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/hotel-chains/h1", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAccessLogCarriesRequestFields(t *testing.T) {
	original := log.Logger

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() { log.Logger = original })

	m := newMiddleware(t, &config.Config{})
	handler := m.RequestID(m.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
	assert.Equal(t, "request handled", line["message"])
}
