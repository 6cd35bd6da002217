// Package calendar builds the expected dividend payment schedule from
// the interim/final month fields of fundamentals records. The schedule
// reflects historical patterns, not announced payments.
package calendar

import (
	"sort"
	"time"

	"github.com/wonny/divscreen/internal/contracts"
)

// Timing marks which of the two expected payments a calendar entry is
type Timing string

const (
	TimingInterim Timing = "INTERIM"
	TimingFinal   Timing = "FINAL"
)

// Entry is one expected payment in a month
type Entry struct {
	Ticker string           `json:"ticker"`
	Timing Timing           `json:"timing"`
	Signal contracts.Signal `json:"signal"`
	Yield  contracts.Metric `json:"yield_pct"`
}

// MonthSummary is the schedule for one calendar month
type MonthSummary struct {
	Month    time.Month       `json:"month"`
	Count    int              `json:"count"`
	AvgYield contracts.Metric `json:"avg_yield"`
	Entries  []Entry          `json:"entries"`
}

// MonthlySchedule groups records by their expected payment months,
// returning one summary per month, January through December. A record
// with both an interim and a final month appears in both. The average
// yield covers only entries whose yield is defined.
func MonthlySchedule(records []contracts.EnrichedRecord) []MonthSummary {
	byMonth := make(map[time.Month][]Entry)

	for _, r := range records {
		if m, ok := contracts.ParseMonth(r.Interim); ok {
			byMonth[m] = append(byMonth[m], Entry{
				Ticker: r.Ticker,
				Timing: TimingInterim,
				Signal: r.Signal,
				Yield:  r.Yield,
			})
		}
		if m, ok := contracts.ParseMonth(r.Final); ok {
			byMonth[m] = append(byMonth[m], Entry{
				Ticker: r.Ticker,
				Timing: TimingFinal,
				Signal: r.Signal,
				Yield:  r.Yield,
			})
		}
	}

	schedule := make([]MonthSummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		entries := byMonth[m]

		var sum float64
		var n int
		for _, e := range entries {
			if e.Yield.Valid {
				sum += e.Yield.Value
				n++
			}
		}

		summary := MonthSummary{
			Month:   m,
			Count:   len(entries),
			Entries: entries,
		}
		if n > 0 {
			summary.AvgYield = contracts.Defined(sum / float64(n))
		}
		schedule = append(schedule, summary)
	}

	return schedule
}

// TopMonths returns the n busiest payout months, busiest first. Months
// without payments are skipped; ties keep calendar order.
func TopMonths(schedule []MonthSummary, n int) []MonthSummary {
	busy := make([]MonthSummary, 0, len(schedule))
	for _, ms := range schedule {
		if ms.Count > 0 {
			busy = append(busy, ms)
		}
	}

	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Count > busy[j].Count
	})

	if len(busy) > n {
		busy = busy[:n]
	}
	return busy
}
