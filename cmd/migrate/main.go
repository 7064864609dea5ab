package main

import (
	"os"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/helper"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	cmd, err := helper.ParseCommand(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration command")
	}

	if err := helper.Run(cfg, cmd); err != nil {
		log.Fatal().Err(err).Str("action", cmd.Action).Msg("Migration failed")
	}
}
