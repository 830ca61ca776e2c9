//go:build wireinject
// +build wireinject

package di

import (
	"SynthTick/pkg/config"
	"SynthTick/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Logging and metrics
		ProvideLogger,
		ProvideMetrics,

		// Generation
		ProvideSampler,
		ProvideSnapshot,

		// Export
		ProvideExporter,

		// Serving
		ProvideCache,
		ProvideSeriesUseCase,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
