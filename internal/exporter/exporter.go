package exporter

import (
	"context"
	"fmt"
	"strings"

	"SynthTick/internal/domain/models"
	domrepo "SynthTick/internal/domain/repository"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	// DateLayout is the cell format for the Date column.
	DateLayout = "2006-01-02"
)

// Header is the column order of the export, shared by both formats.
var Header = []string{"Date", "Ticker", "Open", "High", "Low", "Actual_Close", "Predicted_Close"}

// Exporter writes the generated table to a flat spreadsheet file. The file
// lives at a fixed path and is overwritten on every run; there is no schema
// versioning.
type Exporter struct {
	path    string
	format  string
	metrics domrepo.Metrics
}

func New(path, format string, metrics domrepo.Metrics) (*Exporter, error) {
	format = strings.ToLower(format)
	if format != FormatXLSX && format != FormatCSV {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if path == "" {
		return nil, fmt.Errorf("export path required")
	}
	return &Exporter{path: path, format: format, metrics: metrics}, nil
}

// Path returns the fixed output path.
func (e *Exporter) Path() string { return e.path }

// Export writes bars in the given order (callers pass the snapshot's
// ticker-then-date view). A failed write is the caller's to report; the
// generated table stays valid regardless.
func (e *Exporter) Export(ctx context.Context, bars []models.PriceBar) error {
	var err error
	switch e.format {
	case FormatCSV:
		err = e.writeCSV(bars)
	default:
		err = e.writeXLSX(bars)
	}
	if e.metrics != nil {
		e.metrics.RecordExport(e.format, err)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", e.format, err)
	}
	return nil
}
