package handler

import (
	"net/http"
	"sync"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/di"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. The service graph is built on the
// first invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if err := timezone.Configure(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("falling back to UTC for audit timestamps")
		}

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
