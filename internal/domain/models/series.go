package models

// SeriesResult is a consolidated per-ticker view of the generated table.
// Note: no transport (json/http) concerns here.
type SeriesResult struct {
	Ticker string
	Count  int
	Bars   []PriceBar
}
