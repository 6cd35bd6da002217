package screener

import "github.com/wonny/divscreen/internal/contracts"

// Signal thresholds, all inclusive and in percent
const (
	overvaluedDiscount = 0.0

	strongBuyDiscount = 25.0
	strongBuyROE      = 15.0

	buyDiscount = 15.0
	buyROE      = 10.0

	accumulateDiscount = 5.0
	accumulateROE      = 8.0

	minYield = 8.0
)

// rule is one entry of the classification cascade
type rule struct {
	signal  contracts.Signal
	matches func(discount, roe, yield float64) bool
}

// cascade is evaluated top-down, first match wins. The thresholds
// overlap, so the order is the tie-break: an overvalued stock is
// WAIT FOR DIP no matter how good its ROE and yield look.
var cascade = []rule{
	{
		signal: contracts.SignalWaitForDip,
		matches: func(discount, roe, yield float64) bool {
			return discount < overvaluedDiscount
		},
	},
	{
		signal: contracts.SignalStrongBuy,
		matches: func(discount, roe, yield float64) bool {
			return discount >= strongBuyDiscount && roe >= strongBuyROE && yield >= minYield
		},
	},
	{
		signal: contracts.SignalBuy,
		matches: func(discount, roe, yield float64) bool {
			return discount >= buyDiscount && roe >= buyROE && yield >= minYield
		},
	},
	{
		signal: contracts.SignalAccumulate,
		matches: func(discount, roe, yield float64) bool {
			return discount >= accumulateDiscount && roe >= accumulateROE && yield >= minYield
		},
	},
}

// Classify maps (discount, roe, yield) to a signal. Total over all
// inputs: any undefined input resolves to WAIT, never to an implicit
// zero that could satisfy or fail a threshold.
func Classify(discount, roe, yield contracts.Metric) contracts.Signal {
	if !discount.Valid || !roe.Valid || !yield.Valid {
		return contracts.SignalWait
	}

	for _, r := range cascade {
		if r.matches(discount.Value, roe.Value, yield.Value) {
			return r.signal
		}
	}
	return contracts.SignalWait
}

// DPR risk band thresholds, percent of earnings paid out
const (
	safeDPR     = 70.0
	moderateDPR = 80.0
	elevatedDPR = 100.0
)

// ClassifyDPR maps a dividend payout ratio to its sustainability band
func ClassifyDPR(dpr contracts.Metric) contracts.DPRRisk {
	switch {
	case !dpr.Valid:
		return contracts.DPRUnrated
	case dpr.Value <= safeDPR:
		return contracts.DPRSafe
	case dpr.Value <= moderateDPR:
		return contracts.DPRModerate
	case dpr.Value <= elevatedDPR:
		return contracts.DPRElevated
	default:
		return contracts.DPRCritical
	}
}
