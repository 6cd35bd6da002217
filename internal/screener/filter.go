package screener

import "github.com/wonny/divscreen/internal/contracts"

// Criteria is a conjunction of screening constraints. Nil bounds and
// empty sets mean "no constraint on that field".
type Criteria struct {
	Signals []contracts.Signal `json:"signals,omitempty"`
	Sectors []string           `json:"sectors,omitempty"`

	MinDiscount *float64 `json:"min_discount,omitempty"`
	MinYield    *float64 `json:"min_yield,omitempty"`
	MinROE      *float64 `json:"min_roe,omitempty"`
	MaxDPR      *float64 `json:"max_dpr,omitempty"`
}

// Bound builds an optional bound value
func Bound(v float64) *float64 {
	return &v
}

// IsZero reports whether the criteria constrain nothing
func (c Criteria) IsZero() bool {
	return len(c.Signals) == 0 && len(c.Sectors) == 0 &&
		c.MinDiscount == nil && c.MinYield == nil && c.MinROE == nil && c.MaxDPR == nil
}

// matches evaluates the conjunction against one record. A record whose
// metric is undefined fails any active bound on that metric (fail-closed),
// it is never silently passed through.
func (c Criteria) matches(r contracts.EnrichedRecord) bool {
	if len(c.Signals) > 0 && !containsSignal(c.Signals, r.Signal) {
		return false
	}
	if len(c.Sectors) > 0 && !containsString(c.Sectors, r.Sector) {
		return false
	}
	if c.MinDiscount != nil && !r.Discount.AtLeast(*c.MinDiscount) {
		return false
	}
	if c.MinYield != nil && !r.Yield.AtLeast(*c.MinYield) {
		return false
	}
	if c.MinROE != nil && !r.ROE.AtLeast(*c.MinROE) {
		return false
	}
	if c.MaxDPR != nil && !r.DPR.AtMost(*c.MaxDPR) {
		return false
	}
	return true
}

// Apply returns the subsequence of records matching the criteria,
// preserving the input's relative order. It filters, never sorts.
func Apply(records []contracts.EnrichedRecord, criteria Criteria) []contracts.EnrichedRecord {
	if criteria.IsZero() {
		return records
	}

	matched := make([]contracts.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if criteria.matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func containsSignal(signals []contracts.Signal, s contracts.Signal) bool {
	for _, sig := range signals {
		if sig == s {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}
