package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/store"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Import fundamentals records from CSV",
	Long: `Reads fundamentals records from a CSV file and saves them.
Malformed rows are reported and skipped; valid rows are still saved.

Example:
  go run ./cmd/divscreen import fundamentals.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	result, err := store.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read CSV: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	imported := 0
	for i := range result.Records {
		record := result.Records[i]
		if err := deps.Store.Upsert(ctx, &record); err != nil {
			return fmt.Errorf("save %s: %w", record.Ticker, err)
		}
		imported++
	}

	fmt.Printf("✅ Imported %d record(s)\n", imported)
	for _, rejection := range result.Rejected {
		fmt.Printf("  ⚠ line %d: %s\n", rejection.Line, rejection.Reason)
	}
	if len(result.Rejected) > 0 {
		fmt.Printf("Skipped %d malformed row(s)\n", len(result.Rejected))
	}

	return nil
}
