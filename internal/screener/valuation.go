package screener

import (
	"math"

	"github.com/wonny/divscreen/internal/contracts"
)

// GrahamMultiplier is the constant from Benjamin Graham's fair value
// heuristic: fair value = sqrt(22.5 * BVPS * EPS).
const GrahamMultiplier = 22.5

// FairValue computes a ticker's fair value estimate. A nonzero manual
// override always wins and is flagged as manual. Otherwise the Graham
// number is computed, but only when bvps*eps is strictly positive; a
// non-positive product (loss-making company, missing inputs) yields an
// undefined fair value rather than a square root of a negative number.
func FairValue(bvps, eps contracts.Metric, manualOverride float64) (fair contracts.Metric, manual bool) {
	if manualOverride != 0 {
		return contracts.Defined(manualOverride), true
	}

	if !bvps.Valid || !eps.Valid {
		return contracts.Metric{}, false
	}

	product := bvps.Value * eps.Value
	if product <= 0 {
		return contracts.Metric{}, false
	}

	return contracts.Defined(math.Sqrt(GrahamMultiplier * product)), false
}

// DiscountPct computes the percentage by which fair value exceeds the
// market price. Undefined when fair value is unavailable or non-positive,
// or when the price is unavailable or non-positive.
func DiscountPct(fairValue, price contracts.Metric) contracts.Metric {
	if !fairValue.Valid || fairValue.Value <= 0 || !price.Valid || price.Value <= 0 {
		return contracts.Metric{}
	}
	return contracts.Defined((fairValue.Value - price.Value) / fairValue.Value * 100)
}

// DividendYieldPct computes trailing dividend yield against the market
// price. Undefined when either input is unavailable or the price is
// non-positive.
func DividendYieldPct(divTTM, price contracts.Metric) contracts.Metric {
	if !divTTM.Valid || !price.Valid || price.Value <= 0 {
		return contracts.Metric{}
	}
	return contracts.Defined(divTTM.Value / price.Value * 100)
}
