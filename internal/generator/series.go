package generator

import (
	"fmt"
	"time"

	"SynthTick/internal/domain/models"
	"SynthTick/pkg/util"
)

// Config describes one generation run.
type Config struct {
	Tickers   []string
	Days      int
	BasePrice int       // starting level each ticker's walk is seeded around
	Base      time.Time // last day of the window, usually today
}

// Generate produces Days bars per ticker: a first-order random walk where
// each day's open derives from the previous day's actual close, plus a noisy
// predicted close around the actual one.
//
// Draw order is fixed (outer loop over tickers, inner over days, then
// open -> high -> low -> close -> predicted) so a single shared Sampler
// reproduces bit-identical output for identical inputs.
func Generate(cfg Config, s Sampler) ([]models.PriceBar, error) {
	if len(cfg.Tickers) == 0 {
		return nil, fmt.Errorf("tickers required")
	}
	if cfg.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", cfg.Days)
	}
	if cfg.BasePrice <= 0 {
		cfg.BasePrice = 1000
	}
	if cfg.Base.IsZero() {
		cfg.Base = time.Now()
	}

	dates := util.Window(cfg.Base, cfg.Days)
	bars := make([]models.PriceBar, 0, len(cfg.Tickers)*cfg.Days)

	for _, ticker := range cfg.Tickers {
		// fresh walk per ticker; price carries day to day, never across tickers
		price := cfg.BasePrice + s.IntN(-10, 10)
		for _, dt := range dates {
			open := price + s.IntN(-20, 20)
			high := open + s.IntN(0, 20)
			low := open - s.IntN(0, 20)
			// close is relative to open, not clamped to [low, high]
			actualClose := open + s.IntN(-15, 15)
			predictedClose := float64(actualClose) + s.Gauss(0, 10)

			bars = append(bars, models.PriceBar{
				Date:           dt,
				Ticker:         ticker,
				Open:           open,
				High:           high,
				Low:            low,
				ActualClose:    actualClose,
				PredictedClose: predictedClose,
			})
			price = actualClose
		}
	}

	return bars, nil
}
