package models

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

type SeriesRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required"`
	Limit  int    `query:"limit" json:"limit" default:"100" validate:"gte=1,lte=1000"`
}
