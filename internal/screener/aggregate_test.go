package screener

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/divscreen/internal/contracts"
)

func TestAggregate(t *testing.T) {
	records := sampleRecords()
	summary := Aggregate(records)

	assert.Equal(t, 5, summary.Total)

	assert.Equal(t, 1, summary.BySignal[contracts.SignalStrongBuy])
	assert.Equal(t, 1, summary.BySignal[contracts.SignalBuy])
	assert.Equal(t, 2, summary.BySignal[contracts.SignalWait])
	assert.Equal(t, 1, summary.BySignal[contracts.SignalWaitForDip])

	assert.Equal(t, 2, summary.BySector["Financials"])
	assert.Equal(t, 2, summary.BySector["Energy"])
	assert.Equal(t, 1, summary.BySector["Utilities"])

	// EEEE has no defined metrics and must not drag the means to zero
	assert.True(t, summary.AvgDiscount.Valid)
	assert.InDelta(t, (30.0+18+2-10)/4, summary.AvgDiscount.Value, 1e-9)

	assert.True(t, summary.AvgYield.Valid)
	assert.InDelta(t, (9.0+8.5+3+9)/4, summary.AvgYield.Value, 1e-9)

	assert.True(t, summary.AvgROE.Valid)
	assert.InDelta(t, (16.0+11+6+18)/4, summary.AvgROE.Value, 1e-9)

	assert.Equal(t, 9.0, summary.MaxYield.Value)
	assert.Equal(t, 3.0, summary.MinYield.Value)
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)

	// Explicit no-data result: zero total, undefined means
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.BySignal)
	assert.Empty(t, summary.BySector)
	assert.False(t, summary.AvgDiscount.Valid)
	assert.False(t, summary.AvgYield.Valid)
	assert.False(t, summary.AvgROE.Valid)
	assert.False(t, summary.MaxYield.Valid)
	assert.False(t, summary.MinYield.Valid)
}

func TestAggregateAllUndefined(t *testing.T) {
	records := []contracts.EnrichedRecord{
		enriched("XXXX", "Unknown", contracts.SignalWait, undef, undef, undef, undef),
	}
	summary := Aggregate(records)

	assert.Equal(t, 1, summary.Total)
	assert.False(t, summary.AvgDiscount.Valid)
	assert.False(t, summary.AvgYield.Valid)
	assert.False(t, summary.AvgROE.Valid)
	assert.False(t, math.IsNaN(summary.AvgYield.Value))
}
