package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SynthTick/internal/domain/models"
	"SynthTick/internal/repository"
	icache "SynthTick/internal/service/cache"
	"SynthTick/internal/usecase"
	xlogger "SynthTick/pkg/logger"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) *ChartEchoHandler {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var bars []models.PriceBar
	for i := 0; i < 3; i++ {
		bars = append(bars, models.PriceBar{
			Date: base.AddDate(0, 0, i), Ticker: "ITC.NS",
			Open: 1000, High: 1010, Low: 990, ActualClose: 1002, PredictedClose: 999.5,
		})
	}
	table := repository.NewSnapshot(bars)
	uc := usecase.NewSeriesUseCase(table, nil)
	return NewChartEchoHandler(l, uc, icache.NewTTLCache(), []byte("<html>dashboard</html>"))
}

func doRequest(h *ChartEchoHandler, target string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func TestDashboardServesPage(t *testing.T) {
	rec := doRequest(newTestHandler(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "dashboard") {
		t.Fatalf("page body not served: %q", rec.Body.String())
	}
}

func TestTickers(t *testing.T) {
	rec := doRequest(newTestHandler(t), "/api/tickers")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var tickers []string
	if err := json.Unmarshal(env.Data, &tickers); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(tickers) != 1 || tickers[0] != "ITC.NS" {
		t.Fatalf("unexpected tickers %v", tickers)
	}
}

func TestSeries(t *testing.T) {
	rec := doRequest(newTestHandler(t), "/api/series?ticker=ITC.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var payload seriesPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if payload.Count != 3 || len(payload.Bars) != 3 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Bars[0].Date != "2025-06-01" {
		t.Fatalf("unexpected first date %q", payload.Bars[0].Date)
	}
}

func TestSeriesUnknownTickerEmpty(t *testing.T) {
	rec := doRequest(newTestHandler(t), "/api/series?ticker=MISSING")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown ticker should still be 200, got %d", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var payload seriesPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if payload.Count != 0 || len(payload.Bars) != 0 {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
}

func TestSeriesMissingTickerParam(t *testing.T) {
	rec := doRequest(newTestHandler(t), "/api/series")
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 envelope, got %d", env.Status)
	}
}

func TestSeriesCachedResponseMatches(t *testing.T) {
	h := newTestHandler(t)
	first := doRequest(h, "/api/series?ticker=ITC.NS")
	second := doRequest(h, "/api/series?ticker=ITC.NS")
	// c.JSON terminates with a newline while the cached JSONBlob does not
	if strings.TrimSpace(first.Body.String()) != strings.TrimSpace(second.Body.String()) {
		t.Fatalf("cached response differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}
