package repository

import (
	"context"
	"sort"

	"SynthTick/internal/domain/models"
	domrepo "SynthTick/internal/domain/repository"
)

// Snapshot is the in-memory price table. It is built once from the
// generator's output and immutable afterwards, so reads need no locking.
type Snapshot struct {
	tickers  []string
	byTicker map[string][]models.PriceBar
	all      []models.PriceBar
}

var _ domrepo.BarTable = (*Snapshot)(nil)

// NewSnapshot indexes the generated bars. The input is copied and normalized:
// per-ticker series sorted by date ascending, the flat view by ticker then
// date. Ticker order follows first appearance in the input.
func NewSnapshot(bars []models.PriceBar) *Snapshot {
	s := &Snapshot{byTicker: make(map[string][]models.PriceBar)}

	for _, b := range bars {
		if _, ok := s.byTicker[b.Ticker]; !ok {
			s.tickers = append(s.tickers, b.Ticker)
		}
		s.byTicker[b.Ticker] = append(s.byTicker[b.Ticker], b)
	}

	for _, series := range s.byTicker {
		sort.Slice(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
	}

	s.all = make([]models.PriceBar, 0, len(bars))
	sorted := make([]string, len(s.tickers))
	copy(sorted, s.tickers)
	sort.Strings(sorted)
	for _, tk := range sorted {
		s.all = append(s.all, s.byTicker[tk]...)
	}

	return s
}

func (s *Snapshot) Tickers(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.tickers))
	copy(out, s.tickers)
	return out, nil
}

func (s *Snapshot) Series(ctx context.Context, ticker string) ([]models.PriceBar, error) {
	series, ok := s.byTicker[ticker]
	if !ok {
		return []models.PriceBar{}, nil
	}
	out := make([]models.PriceBar, len(series))
	copy(out, series)
	return out, nil
}

func (s *Snapshot) All(ctx context.Context) ([]models.PriceBar, error) {
	out := make([]models.PriceBar, len(s.all))
	copy(out, s.all)
	return out, nil
}

// Len reports the total number of bars held.
func (s *Snapshot) Len() int {
	return len(s.all)
}
