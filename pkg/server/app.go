package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"SynthTick/internal/exporter"
	"SynthTick/internal/repository"
	"SynthTick/pkg/config"
	xhttp "SynthTick/pkg/http"
	applogger "SynthTick/pkg/logger"
)

// App encapsulates the entire application lifecycle: the table is generated
// before New is called, exported once, then served until interrupted.
type App struct {
	cfg         *config.Config
	logger      *applogger.Logger
	table       *repository.Snapshot
	exp         *exporter.Exporter
	httpServer  *xhttp.Server
	httpHandler xhttp.Handler
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	table *repository.Snapshot,
	exp *exporter.Exporter,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		table:       table,
		exp:         exp,
		httpHandler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.logger.Info("table generated",
		applogger.Int("bars", a.table.Len()),
		applogger.Strings("tickers", a.cfg.Market.Tickers),
		applogger.Int("days", a.cfg.Market.Days),
	)

	// One-shot export. A failed write is reported, never fatal: the export
	// file is peripheral to the in-memory table the dashboard serves.
	if a.exp != nil {
		bars, err := a.table.All(ctx)
		if err == nil {
			err = a.exp.Export(ctx, bars)
		}
		if err != nil {
			a.logger.Error("export failed", applogger.Error(err), applogger.String("path", a.exp.Path()))
		} else {
			a.logger.Info("export written", applogger.String("path", a.exp.Path()), applogger.Int("rows", len(bars)))
		}
	}

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.logger, a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
