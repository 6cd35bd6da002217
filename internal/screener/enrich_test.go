package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/divscreen/internal/contracts"
)

func TestEnrich(t *testing.T) {
	record := contracts.FundamentalsRecord{
		Ticker: "BBCA",
		BVPS:   def(1334),
		EPS:    def(222),
		ROE:    def(20),
		DivTTM: def(250),
		DPR:    def(60),
	}

	quotes := contracts.QuoteBook{}
	quotes.Set(contracts.Quote{Ticker: "BBCA", Price: 2700, Sector: "Financials"})

	got := Enrich(record, quotes)

	assert.Equal(t, "BBCA", got.Ticker)
	assert.Equal(t, "Financials", got.Sector)
	assert.True(t, got.FairValue.Valid)
	assert.InDelta(t, 2581.3, got.FairValue.Value, 0.1)
	assert.False(t, got.ManualValuation)
	assert.True(t, got.Discount.Valid)
	assert.InDelta(t, -4.6, got.Discount.Value, 0.05)
	assert.Equal(t, contracts.SignalWaitForDip, got.Signal)
	assert.Equal(t, contracts.DPRSafe, got.DPRRisk)
}

func TestEnrichWithoutQuote(t *testing.T) {
	record := contracts.FundamentalsRecord{
		Ticker: "TLKM",
		BVPS:   def(1500),
		EPS:    def(300),
		ROE:    def(18),
		DivTTM: def(150),
	}

	got := Enrich(record, contracts.QuoteBook{})

	// Fair value still computes; price-dependent fields degrade
	assert.True(t, got.FairValue.Valid)
	assert.False(t, got.Price.Valid)
	assert.False(t, got.Discount.Valid)
	assert.False(t, got.Yield.Valid)
	assert.Equal(t, contracts.SignalWait, got.Signal)
	assert.Equal(t, "Unknown", got.Sector)
	assert.Equal(t, contracts.DPRUnrated, got.DPRRisk)
}

func TestEnrichAllPartialPrices(t *testing.T) {
	records := []contracts.FundamentalsRecord{
		{Ticker: "AAAA", BVPS: def(100), EPS: def(10), ROE: def(16), DivTTM: def(15)},
		{Ticker: "BBBB", BVPS: def(100), EPS: def(10), ROE: def(16), DivTTM: def(15)},
		{Ticker: "CCCC", BVPS: def(100), EPS: def(-10), ROE: def(16), DivTTM: def(15)},
	}

	quotes := contracts.QuoteBook{}
	quotes.Set(contracts.Quote{Ticker: "AAAA", Price: 100})
	quotes.Set(contracts.Quote{Ticker: "CCCC", Price: 100})

	got := EnrichAll(records, quotes)

	// One priced, one unpriced, one priced-but-lossmaking: no record dropped
	assert.Len(t, got, 3)
	assert.Equal(t, []string{"AAAA", "BBBB", "CCCC"}, tickers(got))
	assert.True(t, got[0].Discount.Valid)
	assert.False(t, got[1].Discount.Valid, "no quote, no discount")
	assert.False(t, got[2].Discount.Valid, "no fair value, no discount")
	assert.True(t, got[2].Yield.Valid, "yield only needs dividend and price")
}

func TestEnrichAllEmpty(t *testing.T) {
	got := EnrichAll(nil, contracts.QuoteBook{})
	assert.Empty(t, got)
}
