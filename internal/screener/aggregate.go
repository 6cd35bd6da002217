package screener

import "github.com/wonny/divscreen/internal/contracts"

// Aggregate reduces a collection of enriched records into summary
// metrics for the dashboard header. Means cover only records with a
// defined value for that field; an empty collection yields Total 0 and
// undefined means rather than a division by zero.
func Aggregate(records []contracts.EnrichedRecord) contracts.Summary {
	summary := contracts.Summary{
		Total:    len(records),
		BySignal: make(map[contracts.Signal]int),
		BySector: make(map[string]int),
	}

	var (
		discountSum float64
		discountN   int
		yieldSum    float64
		yieldN      int
		roeSum      float64
		roeN        int
	)

	for _, r := range records {
		summary.BySignal[r.Signal]++
		summary.BySector[r.Sector]++

		if r.Discount.Valid {
			discountSum += r.Discount.Value
			discountN++
		}
		if r.Yield.Valid {
			yieldSum += r.Yield.Value
			yieldN++
			if !summary.MaxYield.Valid || r.Yield.Value > summary.MaxYield.Value {
				summary.MaxYield = r.Yield
			}
			if !summary.MinYield.Valid || r.Yield.Value < summary.MinYield.Value {
				summary.MinYield = r.Yield
			}
		}
		if r.ROE.Valid {
			roeSum += r.ROE.Value
			roeN++
		}
	}

	if discountN > 0 {
		summary.AvgDiscount = contracts.Defined(discountSum / float64(discountN))
	}
	if yieldN > 0 {
		summary.AvgYield = contracts.Defined(yieldSum / float64(yieldN))
	}
	if roeN > 0 {
		summary.AvgROE = contracts.Defined(roeSum / float64(roeN))
	}

	return summary
}
