package di

import (
	"fmt"
	"time"

	"SynthTick/internal/domain/repository"
	"SynthTick/internal/exporter"
	"SynthTick/internal/generator"
	"SynthTick/internal/handler/api"
	"SynthTick/internal/handler/web"
	internalrepo "SynthTick/internal/repository"
	icache "SynthTick/internal/service/cache"
	"SynthTick/internal/usecase"
	"SynthTick/pkg/config"
	xhttp "SynthTick/pkg/http"
	applogger "SynthTick/pkg/logger"
	"SynthTick/pkg/metrics"
	"SynthTick/pkg/server"
)

// ProvideLogger creates the app logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSampler creates the seeded random source shared by one generation run.
func ProvideSampler(cfg *config.Config) generator.Sampler {
	return generator.NewSampler(cfg.Market.Seed)
}

// ProvideSnapshot runs the generator once and indexes the result. Generation
// happens here, at wiring time, so every consumer sees the same finished table.
func ProvideSnapshot(cfg *config.Config, s generator.Sampler, m repository.Metrics) (*internalrepo.Snapshot, error) {
	start := time.Now()
	bars, err := generator.Generate(generator.Config{
		Tickers:   cfg.Market.Tickers,
		Days:      cfg.Market.Days,
		BasePrice: cfg.Market.BasePrice,
		Base:      time.Now(),
	}, s)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	m.RecordGenerationDuration(time.Since(start).Seconds())
	for _, tk := range cfg.Market.Tickers {
		m.RecordBarsGenerated(tk, cfg.Market.Days)
	}
	return internalrepo.NewSnapshot(bars), nil
}

// ProvideExporter creates the spreadsheet exporter, nil when disabled.
func ProvideExporter(cfg *config.Config, m repository.Metrics) (*exporter.Exporter, error) {
	if !cfg.Export.Enabled {
		return nil, nil
	}
	e, err := exporter.New(cfg.Export.Path, cfg.Export.Format, m)
	if err != nil {
		return nil, fmt.Errorf("exporter: %w", err)
	}
	return e, nil
}

// ProvideSeriesUseCase creates the series query use case.
func ProvideSeriesUseCase(table *internalrepo.Snapshot, m repository.Metrics) *usecase.SeriesUseCase {
	return usecase.NewSeriesUseCase(table, m)
}

// ProvideCache creates the in-process response cache.
func ProvideCache() icache.BytesCache {
	return icache.NewTTLCache()
}

// ProvideHTTPHandler creates the chart handler with the embedded dashboard page.
func ProvideHTTPHandler(l *applogger.Logger, uc *usecase.SeriesUseCase, c icache.BytesCache) xhttp.Handler {
	return api.NewChartEchoHandler(l, uc, c, web.Index)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	table *internalrepo.Snapshot,
	exp *exporter.Exporter,
	h xhttp.Handler,
) *server.App {
	return server.New(cfg, l, table, exp, h)
}
