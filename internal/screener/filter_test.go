package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/divscreen/internal/contracts"
)

func enriched(ticker, sector string, signal contracts.Signal, discount, yield, roe, dpr contracts.Metric) contracts.EnrichedRecord {
	return contracts.EnrichedRecord{
		FundamentalsRecord: contracts.FundamentalsRecord{
			Ticker: ticker,
			ROE:    roe,
			DPR:    dpr,
		},
		Sector:   sector,
		Discount: discount,
		Yield:    yield,
		Signal:   signal,
	}
}

func sampleRecords() []contracts.EnrichedRecord {
	return []contracts.EnrichedRecord{
		enriched("AAAA", "Financials", contracts.SignalStrongBuy, def(30), def(9), def(16), def(60)),
		enriched("BBBB", "Energy", contracts.SignalBuy, def(18), def(8.5), def(11), def(85)),
		enriched("CCCC", "Financials", contracts.SignalWait, def(2), def(3), def(6), def(40)),
		enriched("DDDD", "Utilities", contracts.SignalWaitForDip, def(-10), def(9), def(18), def(75)),
		enriched("EEEE", "Energy", contracts.SignalWait, undef, undef, undef, undef),
	}
}

func tickers(records []contracts.EnrichedRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Ticker)
	}
	return out
}

func TestApplyNoOpPredicate(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, Criteria{})

	// A predicate with no constraints returns the input, in order,
	// without rebuilding the slice
	assert.Equal(t, tickers(records), tickers(got))
	assert.Same(t, &records[0], &got[0])
}

func TestApplyPreservesOrder(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, Criteria{MinYield: Bound(8.0)})

	// AAAA, BBBB, DDDD qualify, and must come back in input order
	assert.Equal(t, []string{"AAAA", "BBBB", "DDDD"}, tickers(got))
}

func TestApplyConjunction(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, Criteria{
		Sectors:     []string{"Financials"},
		MinDiscount: Bound(10.0),
	})

	assert.Equal(t, []string{"AAAA"}, tickers(got))
}

func TestApplySignalFilter(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, Criteria{
		Signals: []contracts.Signal{contracts.SignalStrongBuy, contracts.SignalBuy},
	})

	assert.Equal(t, []string{"AAAA", "BBBB"}, tickers(got))
}

func TestApplyMaxDPR(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, Criteria{MaxDPR: Bound(70.0)})

	// EEEE has no DPR and is excluded fail-closed
	assert.Equal(t, []string{"AAAA", "CCCC"}, tickers(got))
}

func TestApplyFailClosedOnUndefined(t *testing.T) {
	records := sampleRecords()

	// EEEE has every metric undefined: any active numeric bound excludes it
	for name, criteria := range map[string]Criteria{
		"discount": {MinDiscount: Bound(-1000)},
		"yield":    {MinYield: Bound(-1000)},
		"roe":      {MinROE: Bound(-1000)},
		"dpr":      {MaxDPR: Bound(1000)},
	} {
		got := Apply(records, criteria)
		assert.NotContains(t, tickers(got), "EEEE", "bound on %s should exclude undefined", name)
	}
}

func TestApplyPreset(t *testing.T) {
	records := sampleRecords()

	got, err := ApplyPreset(PresetHighYield, records)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA", "BBBB", "DDDD"}, tickers(got))

	got, err = ApplyPreset(PresetValuePlay, records)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA"}, tickers(got))

	got, err = ApplyPreset(PresetGrowthDividend, records)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA", "DDDD"}, tickers(got))

	got, err = ApplyPreset(PresetSafeIncome, records)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA", "BBBB", "DDDD"}, tickers(got))

	_, err = ApplyPreset("Moonshot", records)
	assert.Error(t, err)
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{MinYield: Bound(0)}.IsZero())
	assert.False(t, Criteria{Sectors: []string{"Energy"}}.IsZero())
}
