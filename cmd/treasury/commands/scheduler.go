package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kittycapital/crypto-treasury/internal/scheduler"
	"github.com/kittycapital/crypto-treasury/internal/scheduler/jobs"
)

// schedulerCmd runs the pipeline on a cron schedule
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run snapshot updates on a schedule",
	Long: `Runs the update pipeline on the configured cron schedule
(UPDATE_SCHEDULE, seconds field included) until interrupted.

Example:
  go run ./cmd/treasury scheduler
  go run ./cmd/treasury scheduler --now`,
	RunE: runScheduler,
}

var schedulerRunNow bool

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.Flags().BoolVar(&schedulerRunNow, "now", false, "run one update immediately on start")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline()
	if err != nil {
		return err
	}

	sched := scheduler.New(p.logger)

	updateJob := jobs.NewUpdateJob(p.collector, p.store, p.config, p.logger)
	if err := sched.AddJob(updateJob); err != nil {
		return err
	}

	sched.Start()

	if schedulerRunNow {
		if err := sched.RunJob(updateJob.Name()); err != nil {
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	p.logger.WithField("signal", sig.String()).Info("Shutdown signal received")
	sched.Stop()

	return nil
}
