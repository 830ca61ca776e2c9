package usecase

import (
	"context"
	"fmt"

	"SynthTick/internal/domain/models"
	domrepo "SynthTick/internal/domain/repository"
)

// SeriesUseCase provides business logic for querying the generated table.
type SeriesUseCase struct {
	table   domrepo.BarTable
	metrics domrepo.Metrics
}

func NewSeriesUseCase(table domrepo.BarTable, metrics domrepo.Metrics) *SeriesUseCase {
	return &SeriesUseCase{table: table, metrics: metrics}
}

type GetSeriesParams struct {
	Ticker string
	Limit  int
}

// GetSeries returns one ticker's bars, date ascending. An unknown ticker
// yields an empty result with Count 0; only a missing ticker argument is an
// error.
func (uc *SeriesUseCase) GetSeries(ctx context.Context, p GetSeriesParams) (*models.SeriesResult, error) {
	if p.Ticker == "" {
		return nil, fmt.Errorf("ticker required")
	}
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > 1000 {
		p.Limit = 1000
	}

	bars, err := uc.table.Series(ctx, p.Ticker)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	if len(bars) > p.Limit {
		bars = bars[:p.Limit]
	}

	if uc.metrics != nil {
		uc.metrics.RecordSeriesRequest(p.Ticker)
	}

	return &models.SeriesResult{
		Ticker: p.Ticker,
		Count:  len(bars),
		Bars:   bars,
	}, nil
}

// ListTickers returns the selectable tickers for the dropdown.
func (uc *SeriesUseCase) ListTickers(ctx context.Context) ([]string, error) {
	tickers, err := uc.table.Tickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickers: %w", err)
	}
	return tickers, nil
}
