package main

import (
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/di"
	"github.com/chris-catignani/hotel-tracker-sub001/helper"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Configure(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("falling back to UTC for audit timestamps")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
