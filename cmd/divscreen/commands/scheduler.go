package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/divscreen/internal/scheduler"
	"github.com/wonny/divscreen/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the refresh scheduler",
	Long: `Starts the scheduler daemon or inspects its jobs.

Registered jobs:
- quote_refresh: refreshes cached quotes on QUOTE_REFRESH_SCHEDULE

Example:
  go run ./cmd/divscreen scheduler start
  go run ./cmd/divscreen scheduler list`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler daemon",
		RunE:  runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
}

// initScheduler wires the scheduler with its jobs
func initScheduler(deps *appDeps) (*scheduler.Scheduler, error) {
	sched := scheduler.New(deps.Logger)

	refreshJob := jobs.NewQuoteRefreshJob(deps.Store, deps.Quotes, deps.Config.Quotes.RefreshSchedule, deps.Logger)
	if err := sched.AddJob(refreshJob); err != nil {
		return nil, fmt.Errorf("add refresh job: %w", err)
	}

	return sched, nil
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== divscreen Scheduler ===")

	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	sched, err := initScheduler(deps)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	sched.Start()

	fmt.Println("\n✅ Scheduler started successfully")
	fmt.Println("\nRegistered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	deps, err := initDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	sched, err := initScheduler(deps)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}

	return nil
}
