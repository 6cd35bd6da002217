package screener

import "github.com/wonny/divscreen/internal/contracts"

// Enrich joins one fundamentals record with its market quote and derives
// fair value, discount, yield, signal and DPR risk. Missing prices
// degrade the derived fields to undefined; the record itself always
// remains displayable.
func Enrich(record contracts.FundamentalsRecord, quotes contracts.QuoteBook) contracts.EnrichedRecord {
	price := quotes.Price(record.Ticker)

	fair, manual := FairValue(record.BVPS, record.EPS, record.ManualFairValue)
	discount := DiscountPct(fair, price)
	yield := DividendYieldPct(record.DivTTM, price)

	return contracts.EnrichedRecord{
		FundamentalsRecord: record,
		Price:              price,
		Sector:             quotes.Sector(record.Ticker),
		FairValue:          fair,
		ManualValuation:    manual,
		Discount:           discount,
		Yield:              yield,
		Signal:             Classify(discount, record.ROE, yield),
		DPRRisk:            ClassifyDPR(record.DPR),
	}
}

// EnrichAll runs Enrich over a collection, preserving input order.
// Partial price availability is expected; records without a quote come
// through with undefined derived fields and a WAIT signal.
func EnrichAll(records []contracts.FundamentalsRecord, quotes contracts.QuoteBook) []contracts.EnrichedRecord {
	enriched := make([]contracts.EnrichedRecord, 0, len(records))
	for _, record := range records {
		enriched = append(enriched, Enrich(record, quotes))
	}
	return enriched
}
