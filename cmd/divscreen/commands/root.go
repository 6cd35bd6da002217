package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "divscreen",
	Short: "Dividend stock screener",
	Long: `divscreen - Graham-style dividend stock screener

Screens tracked stocks against live market prices: fair value by the
Graham number, discount to fair value, trailing dividend yield and a
buy/wait signal per stock, plus payout risk and a dividend calendar.

Usage:
  go run ./cmd/divscreen [command]

Examples:
  go run ./cmd/divscreen api
  go run ./cmd/divscreen screen --preset "High Yield"
  go run ./cmd/divscreen import fundamentals.csv
  go run ./cmd/divscreen test-db`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
