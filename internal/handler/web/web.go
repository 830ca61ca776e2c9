// Package web holds the embedded dashboard page. The page is presentation
// glue only: a dropdown and a chart reading /api/tickers and /api/series.
package web

import _ "embed"

//go:embed static/index.html
var Index []byte
