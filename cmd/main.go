package main

import (
	"fmt"

	"github.com/jenozu/fittrack-plus/config"
	"github.com/jenozu/fittrack-plus/logger"
	"github.com/jenozu/fittrack-plus/routes"
)

func main() {
	log := logger.New("fittrack-plus")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing database")
	}

	r := routes.SetupRouter(db, []byte(cfg.JWTSecret), log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
