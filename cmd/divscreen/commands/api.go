package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/api"
	"github.com/wonny/divscreen/internal/api/handlers"
	"github.com/wonny/divscreen/internal/scheduler"
	"github.com/wonny/divscreen/internal/scheduler/jobs"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET    /health                 - Health check
  GET    /api/screen             - Screened records (preset= or ad-hoc filters)
  GET    /api/summary            - Aggregate statistics over screened records
  GET    /api/calendar           - Dividend payout months
  GET    /api/presets            - Named filter presets
  GET    /api/records            - List fundamentals records
  POST   /api/records            - Create or replace a record
  GET    /api/records/{ticker}   - Get one record
  DELETE /api/records/{ticker}   - Delete one record
  POST   /api/records/import     - CSV import
  GET    /api/records/export     - CSV export

Example:
  go run ./cmd/divscreen api
  go run ./cmd/divscreen api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort      string
	apiScheduler bool
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
	apiCmd.Flags().BoolVar(&apiScheduler, "with-scheduler", true, "run the quote refresh scheduler alongside the server")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== divscreen API Server ===")

	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	if apiPort != "" {
		deps.Config.Port = apiPort
	}

	log := deps.Logger
	log.WithFields(map[string]interface{}{
		"port": deps.Config.Port,
		"env":  deps.Config.Env,
	}).Info("Initializing API server")

	screenHandler := handlers.NewScreenHandler(deps.Store, deps.Quotes, log)
	recordsHandler := handlers.NewRecordsHandler(deps.Store, log)
	router := api.NewRouter(screenHandler, recordsHandler, log)
	server := api.New(deps.Config, log, router)

	var sched *scheduler.Scheduler
	if apiScheduler {
		sched = scheduler.New(log)
		refreshJob := jobs.NewQuoteRefreshJob(deps.Store, deps.Quotes, deps.Config.Quotes.RefreshSchedule, log)
		if err := sched.AddJob(refreshJob); err != nil {
			return fmt.Errorf("add refresh job: %w", err)
		}
		sched.Start()
	}

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", deps.Config.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
