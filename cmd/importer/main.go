package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/internal/trivia/external"
)

func main() {
	amount := flag.Int("amount", 20, "Number of questions to request (max 50)")
	sourceName := flag.String("source", "opentdb", "Question source: opentdb|triviaapi")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(cfg.Name+"-importer", cfg.Env)

	if *amount < 1 || *amount > 50 {
		logger.Fatal().Int("amount", *amount).Msg("amount must be between 1 and 50")
	}

	pg, err := db.Open(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pg.Close()

	var source interface {
		Questions(ctx context.Context, amount int) ([]external.Question, error)
	}
	switch *sourceName {
	case "opentdb":
		source = external.NewOpenTDBClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})
	case "triviaapi":
		source = external.NewTriviaAPIClient(cfg.TriviaAPI.BaseURL, cfg.TriviaAPI.APIKey, &http.Client{Timeout: cfg.TriviaAPI.Timeout})
	default:
		logger.Fatal().Str("source", *sourceName).Msg("unknown question source")
	}

	importer := trivia.NewImporter(
		*sourceName,
		source,
		repository.NewQuestionRepository(pg.DB),
		repository.NewCategoryRepository(pg.DB),
		logger,
	)

	result, err := importer.Run(ctx, *amount)
	if err != nil {
		logger.Fatal().Err(err).Msg("import failed")
	}
	logger.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("done")
}
