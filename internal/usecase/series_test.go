package usecase

import (
	"context"
	"testing"
	"time"

	"SynthTick/internal/domain/models"
	"SynthTick/internal/repository"
)

func fixtureTable() *repository.Snapshot {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var bars []models.PriceBar
	for i := 0; i < 5; i++ {
		bars = append(bars, models.PriceBar{
			Date: base.AddDate(0, 0, i), Ticker: "TCS.NS", Open: 1000 + i,
		})
	}
	return repository.NewSnapshot(bars)
}

func TestGetSeries(t *testing.T) {
	uc := NewSeriesUseCase(fixtureTable(), nil)
	res, err := uc.GetSeries(context.Background(), GetSeriesParams{Ticker: "TCS.NS"})
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	if res.Count != 5 || len(res.Bars) != 5 {
		t.Fatalf("expected 5 bars, got count=%d len=%d", res.Count, len(res.Bars))
	}
	if res.Ticker != "TCS.NS" {
		t.Fatalf("unexpected ticker %q", res.Ticker)
	}
}

func TestGetSeriesLimit(t *testing.T) {
	uc := NewSeriesUseCase(fixtureTable(), nil)
	res, err := uc.GetSeries(context.Background(), GetSeriesParams{Ticker: "TCS.NS", Limit: 3})
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	if res.Count != 3 {
		t.Fatalf("expected limit 3, got %d", res.Count)
	}
}

func TestGetSeriesUnknownTickerEmpty(t *testing.T) {
	uc := NewSeriesUseCase(fixtureTable(), nil)
	res, err := uc.GetSeries(context.Background(), GetSeriesParams{Ticker: "MISSING"})
	if err != nil {
		t.Fatalf("unknown ticker must not error: %v", err)
	}
	if res.Count != 0 || len(res.Bars) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestGetSeriesRequiresTicker(t *testing.T) {
	uc := NewSeriesUseCase(fixtureTable(), nil)
	if _, err := uc.GetSeries(context.Background(), GetSeriesParams{}); err == nil {
		t.Fatalf("expected error for empty ticker")
	}
}

func TestListTickers(t *testing.T) {
	uc := NewSeriesUseCase(fixtureTable(), nil)
	tickers, err := uc.ListTickers(context.Background())
	if err != nil {
		t.Fatalf("list tickers: %v", err)
	}
	if len(tickers) != 1 || tickers[0] != "TCS.NS" {
		t.Fatalf("unexpected tickers %v", tickers)
	}
}
