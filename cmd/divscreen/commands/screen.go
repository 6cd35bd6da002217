package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/contracts"
	"github.com/wonny/divscreen/internal/screener"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the screener and print results",
	Long: `Evaluates every tracked stock against live prices and prints
fair value, discount, yield and signal per stock.

Example:
  go run ./cmd/divscreen screen
  go run ./cmd/divscreen screen --preset "High Yield"
  go run ./cmd/divscreen screen --signals "STRONG BUY,BUY" --min-yield 8`,
	RunE: runScreen,
}

var (
	screenPreset      string
	screenSignals     string
	screenSectors     string
	screenMinDiscount float64
	screenMinYield    float64
	screenMinROE      float64
	screenMaxDPR      float64
	screenSummary     bool
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVar(&screenPreset, "preset", "", `named preset ("High Yield", "Value Play", "Growth Dividend", "Safe Income")`)
	screenCmd.Flags().StringVar(&screenSignals, "signals", "", "comma-separated signal filter")
	screenCmd.Flags().StringVar(&screenSectors, "sectors", "", "comma-separated sector filter")
	screenCmd.Flags().Float64Var(&screenMinDiscount, "min-discount", 0, "minimum discount %")
	screenCmd.Flags().Float64Var(&screenMinYield, "min-yield", 0, "minimum dividend yield %")
	screenCmd.Flags().Float64Var(&screenMinROE, "min-roe", 0, "minimum ROE %")
	screenCmd.Flags().Float64Var(&screenMaxDPR, "max-dpr", 0, "maximum payout ratio %")
	screenCmd.Flags().BoolVar(&screenSummary, "summary", true, "print aggregate statistics")
}

func runScreen(cmd *cobra.Command, args []string) error {
	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	criteria, err := screenCriteria(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	records, err := deps.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No records tracked yet. Add some with 'import' or the API.")
		return nil
	}

	tickers := make([]string, 0, len(records))
	for _, rec := range records {
		tickers = append(tickers, rec.Ticker)
	}

	book := deps.Quotes.Snapshot(ctx, tickers)
	enriched := screener.EnrichAll(records, book)
	results := screener.Apply(enriched, criteria)

	printResults(results)

	if screenSummary {
		printSummary(screener.Aggregate(results))
	}

	return nil
}

// screenCriteria builds filter criteria from the command flags
func screenCriteria(cmd *cobra.Command) (screener.Criteria, error) {
	if screenPreset != "" {
		criteria, ok := screener.PresetCriteria(screenPreset)
		if !ok {
			return screener.Criteria{}, fmt.Errorf("unknown preset: %q (valid: %s)",
				screenPreset, strings.Join(screener.PresetNames, ", "))
		}
		return criteria, nil
	}

	var criteria screener.Criteria

	if screenSignals != "" {
		for _, part := range strings.Split(screenSignals, ",") {
			signal, err := contracts.ParseSignal(strings.TrimSpace(part))
			if err != nil {
				return screener.Criteria{}, err
			}
			criteria.Signals = append(criteria.Signals, signal)
		}
	}
	if screenSectors != "" {
		for _, part := range strings.Split(screenSectors, ",") {
			criteria.Sectors = append(criteria.Sectors, strings.TrimSpace(part))
		}
	}
	if cmd.Flags().Changed("min-discount") {
		criteria.MinDiscount = screener.Bound(screenMinDiscount)
	}
	if cmd.Flags().Changed("min-yield") {
		criteria.MinYield = screener.Bound(screenMinYield)
	}
	if cmd.Flags().Changed("min-roe") {
		criteria.MinROE = screener.Bound(screenMinROE)
	}
	if cmd.Flags().Changed("max-dpr") {
		criteria.MaxDPR = screener.Bound(screenMaxDPR)
	}

	return criteria, nil
}

func printResults(results []contracts.EnrichedRecord) {
	if len(results) == 0 {
		fmt.Println("No stocks match the criteria.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKER\tSECTOR\tPRICE\tFAIR VALUE\tDISCOUNT\tYIELD\tROE\tDPR RISK\tSIGNAL")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Ticker,
			r.Sector,
			formatMetric(r.Price, ""),
			formatMetric(r.FairValue, ""),
			formatMetric(r.Discount, "%"),
			formatMetric(r.Yield, "%"),
			formatMetric(r.ROE, "%"),
			r.DPRRisk,
			r.Signal,
		)
	}
	w.Flush()
}

func printSummary(summary contracts.Summary) {
	fmt.Printf("\nTotal: %d\n", summary.Total)

	if summary.Total == 0 {
		return
	}

	fmt.Println("\nBy signal:")
	for _, signal := range contracts.AllSignals {
		if count := summary.BySignal[signal]; count > 0 {
			fmt.Printf("  %-13s %d\n", signal, count)
		}
	}

	fmt.Println("\nAverages:")
	fmt.Printf("  Discount  %s\n", formatMetric(summary.AvgDiscount, "%"))
	fmt.Printf("  Yield     %s (max %s, min %s)\n",
		formatMetric(summary.AvgYield, "%"),
		formatMetric(summary.MaxYield, "%"),
		formatMetric(summary.MinYield, "%"))
	fmt.Printf("  ROE       %s\n", formatMetric(summary.AvgROE, "%"))
}

// formatMetric renders an optional metric for terminal output
func formatMetric(m contracts.Metric, suffix string) string {
	if !m.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%s", m.Value, suffix)
}
