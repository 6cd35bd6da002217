package contracts

import "fmt"

// Signal is the categorical recommendation derived from discount, ROE
// and dividend yield thresholds.
type Signal string

const (
	SignalStrongBuy  Signal = "STRONG BUY"
	SignalBuy        Signal = "BUY"
	SignalAccumulate Signal = "ACCUMULATE"
	SignalWait       Signal = "WAIT"
	SignalWaitForDip Signal = "WAIT FOR DIP"
)

// AllSignals lists every signal in display order
var AllSignals = []Signal{
	SignalStrongBuy,
	SignalBuy,
	SignalAccumulate,
	SignalWait,
	SignalWaitForDip,
}

// ParseSignal validates a signal string
func ParseSignal(s string) (Signal, error) {
	for _, sig := range AllSignals {
		if string(sig) == s {
			return sig, nil
		}
	}
	return "", fmt.Errorf("unknown signal: %q", s)
}

// DPRRisk classifies dividend payout ratio sustainability
type DPRRisk string

const (
	DPRSafe     DPRRisk = "SAFE"     // payout <= 70%
	DPRModerate DPRRisk = "MODERATE" // payout <= 80%
	DPRElevated DPRRisk = "ELEVATED" // payout <= 100%
	DPRCritical DPRRisk = "CRITICAL" // paying out more than earnings
	DPRUnrated  DPRRisk = "UNRATED"  // payout ratio unavailable
)
