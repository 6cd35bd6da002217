package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/divscreen/internal/contracts"
)

func record(ticker, interim, final string, yield contracts.Metric, signal contracts.Signal) contracts.EnrichedRecord {
	return contracts.EnrichedRecord{
		FundamentalsRecord: contracts.FundamentalsRecord{
			Ticker:  ticker,
			Interim: interim,
			Final:   final,
		},
		Yield:  yield,
		Signal: signal,
	}
}

func TestMonthlySchedule(t *testing.T) {
	records := []contracts.EnrichedRecord{
		record("AAAA", "June", "December", contracts.Defined(8), contracts.SignalBuy),
		record("BBBB", "", "December", contracts.Defined(6), contracts.SignalWait),
		record("CCCC", "June", "", contracts.Metric{}, contracts.SignalWait),
		record("DDDD", "", "", contracts.Defined(9), contracts.SignalStrongBuy),
	}

	schedule := MonthlySchedule(records)
	require.Len(t, schedule, 12)

	june := schedule[time.June-1]
	assert.Equal(t, time.June, june.Month)
	assert.Equal(t, 2, june.Count)
	// CCCC's yield is undefined and excluded from the average
	assert.True(t, june.AvgYield.Valid)
	assert.Equal(t, 8.0, june.AvgYield.Value)

	december := schedule[time.December-1]
	assert.Equal(t, 2, december.Count)
	assert.Equal(t, 7.0, december.AvgYield.Value)

	// AAAA appears in both its interim and final months
	assert.Equal(t, TimingInterim, june.Entries[0].Timing)
	assert.Equal(t, "AAAA", june.Entries[0].Ticker)
	assert.Equal(t, TimingFinal, december.Entries[0].Timing)

	// DDDD has no payment months and appears nowhere
	for _, ms := range schedule {
		for _, e := range ms.Entries {
			assert.NotEqual(t, "DDDD", e.Ticker)
		}
	}

	january := schedule[time.January-1]
	assert.Equal(t, 0, january.Count)
	assert.False(t, january.AvgYield.Valid)
}

func TestMonthlyScheduleEmpty(t *testing.T) {
	schedule := MonthlySchedule(nil)
	require.Len(t, schedule, 12)
	for _, ms := range schedule {
		assert.Equal(t, 0, ms.Count)
		assert.False(t, ms.AvgYield.Valid)
	}
}

func TestTopMonths(t *testing.T) {
	records := []contracts.EnrichedRecord{
		record("AAAA", "June", "December", contracts.Defined(8), contracts.SignalBuy),
		record("BBBB", "June", "December", contracts.Defined(6), contracts.SignalWait),
		record("CCCC", "June", "", contracts.Defined(7), contracts.SignalWait),
		record("DDDD", "March", "", contracts.Defined(9), contracts.SignalStrongBuy),
	}

	top := TopMonths(MonthlySchedule(records), 3)
	require.Len(t, top, 3)

	assert.Equal(t, time.June, top[0].Month)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, time.December, top[1].Month)
	assert.Equal(t, time.March, top[2].Month)

	// Fewer busy months than requested
	top = TopMonths(MonthlySchedule(records[3:]), 3)
	assert.Len(t, top, 1)
}
