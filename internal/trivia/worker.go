package trivia

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheWarmer periodically reloads the category cache so reads rarely miss.
type CacheWarmer struct {
	svc      *Service
	logger   zerolog.Logger
	interval time.Duration
}

func NewCacheWarmer(svc *Service, interval time.Duration, logger zerolog.Logger) *CacheWarmer {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheWarmer{
		svc:      svc,
		logger:   logger.With().Str("component", "category_cache_warmer").Logger(),
		interval: interval,
	}
}

// Run blocks until context cancellation.
func (w *CacheWarmer) Run(ctx context.Context) error {
	if w.svc == nil || w.svc.cache == nil {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *CacheWarmer) tick(ctx context.Context) {
	if err := w.svc.RefreshCategories(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("category cache refresh failed")
		return
	}
	w.logger.Debug().Msg("category cache refreshed")
}
