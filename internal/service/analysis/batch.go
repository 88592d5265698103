package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BatchResult summarizes one batch run over the active universe.
type BatchResult struct {
	Total    int
	Analyzed int
	Failed   []string
	Duration time.Duration
}

// RunBatch scores every symbol with usable financial data as of the given
// date. Failures are collected per symbol; one bad company never aborts
// the run.
func (s *Service) RunBatch(ctx context.Context, date time.Time, workers int) (*BatchResult, error) {
	if workers <= 0 {
		workers = 4
	}

	symbols, err := s.reader.ListSymbols(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("symbols", len(symbols)).
		Int("workers", workers).
		Str("date", date.Format("2006-01-02")).
		Msg("Batch analysis started")

	start := time.Now()
	result := &BatchResult{Total: len(symbols)}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := s.AnalyzeSymbol(gctx, symbol, date); err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("Batch analysis failed for symbol")
				mu.Lock()
				result.Failed = append(result.Failed, symbol)
				mu.Unlock()
				return nil
			}
			mu.Lock()
			result.Analyzed++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)

	log.Info().
		Int("analyzed", result.Analyzed).
		Int("failed", len(result.Failed)).
		Dur("duration", result.Duration).
		Msg("Batch analysis finished")

	return result, nil
}
