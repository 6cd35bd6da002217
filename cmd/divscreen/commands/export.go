package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/store"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file.csv]",
	Short: "Export fundamentals records to CSV",
	Long: `Writes every stored fundamentals record to a CSV file, or to
stdout when no file is given.

Example:
  go run ./cmd/divscreen export fundamentals.csv
  go run ./cmd/divscreen export`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	records, err := deps.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create %s: %w", args[0], err)
		}
		defer f.Close()
		out = f
	}

	if err := store.WriteCSV(out, records); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}

	if len(args) == 1 {
		fmt.Printf("✅ Exported %d record(s) to %s\n", len(records), args[0])
	}

	return nil
}
