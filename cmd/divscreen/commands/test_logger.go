package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wonny/divscreen/pkg/config"
	"github.com/wonny/divscreen/pkg/logger"
)

// testLoggerCmd represents the test-logger command
var testLoggerCmd = &cobra.Command{
	Use:   "test-logger",
	Short: "Test structured logging",
	Long: `Exercises the structured logger in both output formats.

Example:
  go run ./cmd/divscreen test-logger`,
	RunE: runTestLogger,
}

func init() {
	rootCmd.AddCommand(testLoggerCmd)
}

func runTestLogger(cmd *cobra.Command, args []string) error {
	fmt.Println("=== divscreen Logger Test ===")

	fmt.Println("1. JSON Format (Production)")
	fmt.Println("--------------------------------")
	testLogFormat("production", "json")
	fmt.Println()

	fmt.Println("2. Console Format (Development)")
	fmt.Println("--------------------------------")
	testLogFormat("development", "console")
	fmt.Println()

	fmt.Println("3. Structured Fields and Errors")
	fmt.Println("--------------------------------")
	log := logger.New(&config.Config{Env: "development", LogLevel: "debug", LogFormat: "console"})
	log.WithFields(map[string]interface{}{
		"ticker": "BBCA",
		"price":  9625.0,
		"signal": "BUY",
	}).Info("Structured field logging")
	log.WithError(errors.New("connection refused")).Error("Error context logging")

	fmt.Println("\n✅ All logger tests completed!")
	return nil
}

func testLogFormat(env, format string) {
	log := logger.New(&config.Config{Env: env, LogLevel: "debug", LogFormat: format})
	log.Debug("Debug message")
	log.Info("Info message")
	log.Warn("Warning message")
	log.Infof("Formatted message: %d quotes refreshed", 42)
}
