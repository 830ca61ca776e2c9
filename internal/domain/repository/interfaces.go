package repository

import (
	"context"

	"SynthTick/internal/domain/models"
)

// BarTable provides read-only access to the generated price table. The table
// is built once at startup and never mutated; implementations must be safe
// for concurrent readers.
type BarTable interface {
	// Tickers returns the distinct tickers in table order.
	Tickers(ctx context.Context) ([]string, error)
	// Series returns the bars for one ticker sorted by date ascending.
	// An unknown ticker yields an empty slice, not an error.
	Series(ctx context.Context, ticker string) ([]models.PriceBar, error)
	// All returns every bar sorted by ticker then date (export order).
	All(ctx context.Context) ([]models.PriceBar, error)
}

type Metrics interface {
	RecordBarsGenerated(ticker string, n int)
	RecordGenerationDuration(seconds float64)
	RecordExport(format string, err error)
	RecordSeriesRequest(ticker string)
}
