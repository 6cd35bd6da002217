package contracts

// EnrichedRecord is a FundamentalsRecord joined with a market quote and
// all derived figures. It is recomputed on every display pass and never
// stored.
type EnrichedRecord struct {
	FundamentalsRecord

	Price  Metric `json:"price"`
	Sector string `json:"sector"`

	FairValue       Metric `json:"fair_value"`
	ManualValuation bool   `json:"manual_valuation"` // fair value came from the override
	Discount        Metric `json:"discount_pct"`     // negative = overvalued
	Yield           Metric `json:"yield_pct"`

	Signal  Signal  `json:"signal"`
	DPRRisk DPRRisk `json:"dpr_risk"`
}

// Summary is the aggregate view over a (possibly filtered) collection of
// enriched records. Means cover only records with a defined value for
// that field; Total 0 with undefined means is the explicit no-data state.
type Summary struct {
	Total int `json:"total"`

	BySignal map[Signal]int `json:"by_signal"`
	BySector map[string]int `json:"by_sector"`

	AvgDiscount Metric `json:"avg_discount"`
	AvgYield    Metric `json:"avg_yield"`
	AvgROE      Metric `json:"avg_roe"`

	MaxYield Metric `json:"max_yield"`
	MinYield Metric `json:"min_yield"`
}
