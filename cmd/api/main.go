package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

func main() {
	envFile := flag.String("env-file", "configs/.env", "dotenv file read outside production")
	bootTimeout := flag.Duration("boot-timeout", 10*time.Second, "Deadline for connecting to Postgres and Redis")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Warn().Err(err).Str("file", *envFile).Msg("dotenv not loaded")
		}
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), *bootTimeout)
	defer cancel()

	cfg, err := config.Load(bootCtx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	api, err := app.New(bootCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap trivia api")
	}

	if err := api.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("trivia api stopped")
	}
}
