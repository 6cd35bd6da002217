package contracts

import "time"

// Quote is an ephemeral market quote for one ticker. Quotes are supplied
// per evaluation pass and never persisted by the core.
type Quote struct {
	Ticker    string    `json:"ticker"`
	Price     float64   `json:"price"`
	Sector    string    `json:"sector,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// QuoteBook maps ticker to its latest quote. A ticker absent from the
// book had no usable price this pass.
type QuoteBook map[string]Quote

// Price returns the ticker's price as a metric; undefined when the
// ticker is missing or the quoted price is non-positive.
func (b QuoteBook) Price(ticker string) Metric {
	q, ok := b[NormalizeTicker(ticker)]
	if !ok || q.Price <= 0 {
		return Metric{}
	}
	return Defined(q.Price)
}

// Sector returns the ticker's sector, or "Unknown" when unavailable
func (b QuoteBook) Sector(ticker string) string {
	q, ok := b[NormalizeTicker(ticker)]
	if !ok || q.Sector == "" {
		return "Unknown"
	}
	return q.Sector
}

// Set stores a quote under its normalized ticker
func (b QuoteBook) Set(q Quote) {
	b[NormalizeTicker(q.Ticker)] = q
}
