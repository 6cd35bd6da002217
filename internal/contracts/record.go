package contracts

import (
	"fmt"
	"strings"
	"time"
)

// FundamentalsRecord holds one ticker's raw fundamental inputs as
// maintained through the management interface. The ticker is the unique
// key; creating a record with an existing ticker is an update.
type FundamentalsRecord struct {
	Ticker string `json:"ticker"`

	BVPS   Metric `json:"bvps"`    // book value per share
	EPS    Metric `json:"eps"`     // earnings per share, may be negative
	ROE    Metric `json:"roe"`     // return on equity, percent
	DivTTM Metric `json:"div_ttm"` // trailing-twelve-month dividend per share
	DPR    Metric `json:"dpr"`     // dividend payout ratio, percent

	// Expected dividend payment months ("" = unknown)
	Interim string `json:"interim"`
	Final   string `json:"final"`

	// Nonzero overrides the computed fair value
	ManualFairValue float64 `json:"manual_fair_value"`

	LastUpdated time.Time `json:"last_updated"`
}

// NormalizeTicker canonicalizes a ticker symbol for keying
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Validate checks structural validity of a record
func (r *FundamentalsRecord) Validate() error {
	if NormalizeTicker(r.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if r.Interim != "" {
		if _, ok := ParseMonth(r.Interim); !ok {
			return fmt.Errorf("invalid interim month: %q", r.Interim)
		}
	}
	if r.Final != "" {
		if _, ok := ParseMonth(r.Final); !ok {
			return fmt.Errorf("invalid final month: %q", r.Final)
		}
	}
	return nil
}

// monthsByName maps English month names to time.Month
var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// ParseMonth resolves a month name ("January") to time.Month
func ParseMonth(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
