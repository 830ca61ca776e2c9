package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	models "SynthTick/internal/domain/models"
	icache "SynthTick/internal/service/cache"
	"SynthTick/internal/usecase"
	xhttp "SynthTick/pkg/http"
	xlogger "SynthTick/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartEchoHandler serves the dashboard page and the chart-data API it reads.
type ChartEchoHandler struct {
	logger   *xlogger.Logger
	uc       *usecase.SeriesUseCase
	cache    icache.BytesCache
	cacheTTL time.Duration
	page     []byte
}

func NewChartEchoHandler(logger *xlogger.Logger, uc *usecase.SeriesUseCase, cache icache.BytesCache, page []byte) *ChartEchoHandler {
	return &ChartEchoHandler{
		logger:   logger,
		uc:       uc,
		cache:    cache,
		cacheTTL: 5 * time.Minute,
		page:     page,
	}
}

func (h *ChartEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/tickers", h.Tickers)
	g.GET("/series", h.Series)
}

// Dashboard serves the single embedded page.
func (h *ChartEchoHandler) Dashboard(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, h.page)
}

func (h *ChartEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Tickers returns the dropdown options.
func (h *ChartEchoHandler) Tickers(c echo.Context) error {
	tickers, err := h.uc.ListTickers(c.Request().Context())
	if err != nil {
		h.logger.Error("tickers usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, tickers)
}

type seriesBar struct {
	Date           string  `json:"date"`
	Open           int     `json:"open"`
	High           int     `json:"high"`
	Low            int     `json:"low"`
	ActualClose    int     `json:"actual_close"`
	PredictedClose float64 `json:"predicted_close"`
}

type seriesPayload struct {
	Ticker string      `json:"ticker"`
	Count  int         `json:"count"`
	Bars   []seriesBar `json:"bars"`
}

// Series returns one ticker's bars, date ascending. Unknown tickers are an
// empty payload, not an error; the table never changes, so responses cache
// well.
func (h *ChartEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	key := fmt.Sprintf("series:%s:%d", req.Ticker, req.Limit)
	if h.cache != nil {
		if b, ok, _ := h.cache.GetBytes(key); ok {
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	res, err := h.uc.GetSeries(c.Request().Context(), usecase.GetSeriesParams{
		Ticker: req.Ticker,
		Limit:  req.Limit,
	})
	if err != nil {
		h.logger.Error("series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	payload := seriesPayload{Ticker: res.Ticker, Count: res.Count, Bars: make([]seriesBar, 0, res.Count)}
	for _, b := range res.Bars {
		payload.Bars = append(payload.Bars, seriesBar{
			Date:           b.Date.Format("2006-01-02"),
			Open:           b.Open,
			High:           b.High,
			Low:            b.Low,
			ActualClose:    b.ActualClose,
			PredictedClose: b.PredictedClose,
		})
	}

	if h.cache != nil {
		envelope := xhttp.APIResponse{
			Status:  http.StatusOK,
			Message: http.StatusText(http.StatusOK),
			Data:    payload,
		}
		if b, err := json.Marshal(envelope); err == nil {
			_ = h.cache.SetBytes(key, b, h.cacheTTL)
		}
	}

	return xhttp.SuccessResponse(c, payload)
}
