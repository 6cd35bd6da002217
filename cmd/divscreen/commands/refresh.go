package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/contracts"
)

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh [ticker...]",
	Short: "Refresh cached quotes",
	Long: `Force-fetches quotes from Yahoo Finance and rewrites the cache.
With no arguments, refreshes every tracked ticker.

Example:
  go run ./cmd/divscreen refresh
  go run ./cmd/divscreen refresh BBCA TLKM`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	tickers := make([]string, 0, len(args))
	for _, arg := range args {
		tickers = append(tickers, contracts.NormalizeTicker(arg))
	}

	if len(tickers) == 0 {
		records, err := deps.Store.List(ctx)
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		for _, rec := range records {
			tickers = append(tickers, rec.Ticker)
		}
	}

	if len(tickers) == 0 {
		fmt.Println("No tickers to refresh.")
		return nil
	}

	fmt.Printf("Refreshing %d ticker(s)...\n", len(tickers))
	refreshed := deps.Quotes.Refresh(ctx, tickers)
	fmt.Printf("✅ Refreshed %d/%d\n", refreshed, len(tickers))

	return nil
}
