package jobs

import (
	"context"
	"fmt"

	"github.com/kittycapital/crypto-treasury/internal/collector"
	"github.com/kittycapital/crypto-treasury/internal/store"
	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// UpdateJob runs the full snapshot pipeline on schedule
// SSOT: the recurring update is driven only by this job.
type UpdateJob struct {
	collector *collector.Collector
	store     *store.Store
	config    *config.Config
	logger    *logger.Logger
}

// NewUpdateJob creates a new update job
func NewUpdateJob(col *collector.Collector, st *store.Store, cfg *config.Config, log *logger.Logger) *UpdateJob {
	return &UpdateJob{
		collector: col,
		store:     st,
		config:    cfg,
		logger:    log,
	}
}

// Name returns the job name
func (j *UpdateJob) Name() string {
	return "treasury_update"
}

// Schedule returns the cron schedule from config
func (j *UpdateJob) Schedule() string {
	return j.config.Pipeline.Schedule
}

// Run executes one snapshot run and persists the result
func (j *UpdateJob) Run(ctx context.Context) error {
	j.logger.Info("Starting scheduled snapshot update")

	report, err := j.collector.Run(ctx)
	if err != nil {
		return fmt.Errorf("run collector: %w", err)
	}

	if err := j.store.Write(report); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	j.logger.Info("Scheduled snapshot update completed")
	return nil
}
