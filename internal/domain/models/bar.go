package models

import "time"

// PriceBar is one synthetic daily OHLC record for a ticker, plus the noisy
// predicted close that accompanies it.
//
// Open/High/Low/ActualClose stay on the source's integer scale. High >= Open
// and Low <= Open hold by construction; ActualClose is NOT constrained to the
// [Low, High] band — the generator carries that shape through deliberately.
type PriceBar struct {
	Date           time.Time
	Ticker         string
	Open           int
	High           int
	Low            int
	ActualClose    int
	PredictedClose float64
}
