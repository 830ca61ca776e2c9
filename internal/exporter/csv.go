package exporter

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"SynthTick/internal/domain/models"
)

// barRow is the CSV projection of a PriceBar.
type barRow struct {
	Date           string  `csv:"Date"`
	Ticker         string  `csv:"Ticker"`
	Open           int     `csv:"Open"`
	High           int     `csv:"High"`
	Low            int     `csv:"Low"`
	ActualClose    int     `csv:"Actual_Close"`
	PredictedClose float64 `csv:"Predicted_Close"`
}

func (e *Exporter) writeCSV(bars []models.PriceBar) error {
	rows := make([]barRow, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, barRow{
			Date:           b.Date.Format(DateLayout),
			Ticker:         b.Ticker,
			Open:           b.Open,
			High:           b.High,
			Low:            b.Low,
			ActualClose:    b.ActualClose,
			PredictedClose: b.PredictedClose,
		})
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", e.path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("marshal csv: %w", err)
	}
	return nil
}
