package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/calendar"
	"github.com/wonny/divscreen/internal/screener"
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the dividend payout calendar",
	Long: `Groups tracked stocks by their interim and final dividend months.

Example:
  go run ./cmd/divscreen calendar
  go run ./cmd/divscreen calendar --top 3`,
	RunE: runCalendar,
}

var calendarTop int

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().IntVar(&calendarTop, "top", 0, "only show the N busiest months")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	records, err := deps.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	tickers := make([]string, 0, len(records))
	for _, rec := range records {
		tickers = append(tickers, rec.Ticker)
	}
	book := deps.Quotes.Snapshot(ctx, tickers)

	schedule := calendar.MonthlySchedule(screener.EnrichAll(records, book))
	if calendarTop > 0 {
		schedule = calendar.TopMonths(schedule, calendarTop)
	}

	for _, month := range schedule {
		if month.Count == 0 && calendarTop == 0 {
			fmt.Printf("%-10s -\n", month.Month)
			continue
		}
		fmt.Printf("%-10s %d payout(s), avg yield %s\n", month.Month, month.Count, formatMetric(month.AvgYield, "%"))
		for _, entry := range month.Entries {
			fmt.Printf("  %-6s %-8s %-13s yield %s\n",
				entry.Ticker, entry.Timing, entry.Signal, formatMetric(entry.Yield, "%"))
		}
	}

	return nil
}
