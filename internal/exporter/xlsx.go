package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"SynthTick/internal/domain/models"
)

const sheetName = "Sheet1"

func (e *Exporter) writeXLSX(bars []models.PriceBar) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, b := range bars {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		row := []interface{}{
			b.Date.Format(DateLayout),
			b.Ticker,
			b.Open,
			b.High,
			b.Low,
			b.ActualClose,
			b.PredictedClose,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("save %s: %w", e.path, err)
	}
	return nil
}
