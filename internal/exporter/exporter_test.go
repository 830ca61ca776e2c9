package exporter

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"SynthTick/internal/domain/models"
)

func sampleBars() []models.PriceBar {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.PriceBar{
		{Date: base, Ticker: "A", Open: 1000, High: 1010, Low: 990, ActualClose: 1005, PredictedClose: 1003.5},
		{Date: base.AddDate(0, 0, 1), Ticker: "A", Open: 1005, High: 1012, Low: 1001, ActualClose: 998, PredictedClose: 1000.25},
	}
}

func TestNewRejectsBadFormat(t *testing.T) {
	if _, err := New("out.xlsx", "parquet", nil); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if _, err := New("", FormatCSV, nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	e, err := New(path, FormatCSV, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := e.Export(context.Background(), sampleBars()); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	for i, h := range Header {
		if records[0][i] != h {
			t.Fatalf("header column %d = %q, want %q", i, records[0][i], h)
		}
	}
	if records[1][0] != "2025-06-01" || records[1][1] != "A" || records[1][2] != "1000" {
		t.Fatalf("unexpected first row %v", records[1])
	}
}

func TestExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	e, _ := New(path, FormatCSV, nil)
	if err := e.Export(context.Background(), sampleBars()); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := e.Export(context.Background(), sampleBars()[:1]); err != nil {
		t.Fatalf("second export: %v", err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected overwrite to header + 1 row, got %d", len(records))
	}
}

func TestExportWriteFailureReported(t *testing.T) {
	e, _ := New(filepath.Join(t.TempDir(), "missing", "deep", "bars.csv"), FormatCSV, nil)
	if err := e.Export(context.Background(), sampleBars()); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}

func TestExportXLSXCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.xlsx")
	e, err := New(path, FormatXLSX, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := e.Export(context.Background(), sampleBars()); err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty xlsx written")
	}
}
