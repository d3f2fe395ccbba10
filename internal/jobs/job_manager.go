package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// Schedules are six-field cron expressions (with seconds).
type Schedules struct {
	OrderCleanup string
	ChartsExport string
}

// DefaultSchedules cleans orders every hour and exports charts every five minutes.
func DefaultSchedules() Schedules {
	return Schedules{
		OrderCleanup: "0 0 * * * *",
		ChartsExport: "0 */5 * * * *",
	}
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCleanupJob *OrderCleanupJob
	chartsExportJob *ChartsExportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Empty schedules fall back to DefaultSchedules.
func NewJobManager(
	cleanOrdersHandler commands.CleanOrdersCommandHandler,
	exportChartsHandler commands.ExportChartsCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	defaults := DefaultSchedules()
	if schedules.OrderCleanup == "" {
		schedules.OrderCleanup = defaults.OrderCleanup
	}
	if schedules.ChartsExport == "" {
		schedules.ChartsExport = defaults.ChartsExport
	}

	return &JobManager{
		orderCleanupJob: NewOrderCleanupJob(cleanOrdersHandler, schedules.OrderCleanup, logger),
		chartsExportJob: NewChartsExportJob(exportChartsHandler, schedules.ChartsExport, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start order cleanup job: %w", err)
	}

	if err := jm.chartsExportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderCleanupJob.Stop()
		return fmt.Errorf("failed to start charts export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.chartsExportJob.Stop()
	jm.orderCleanupJob.Stop()
}
