package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ChartsExportJob rewrites the registry charts on a schedule.
type ChartsExportJob struct {
	handler  commands.ExportChartsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewChartsExportJob creates a new job running ExportChartsCommandHandler on
// schedule, a six-field cron expression with seconds.
func NewChartsExportJob(handler commands.ExportChartsCommandHandler, schedule string, logger *slog.Logger) *ChartsExportJob {
	return &ChartsExportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "charts_export_job"),
	}
}

// Start schedules the job.
func (j *ChartsExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Charts export job started", "schedule", j.schedule)
	return nil
}

// RunOnce exports the charts now and returns the written files.
func (j *ChartsExportJob) RunOnce(ctx context.Context) ([]string, error) {
	files, err := j.handler.Handle(ctx, commands.NewExportChartsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Charts export job failed", "error", err)
		return nil, err
	}
	j.logger.DebugContext(ctx, "Charts exported", "files", files)
	return files, nil
}

// Stop stops the charts export job.
func (j *ChartsExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Charts export job stopped")
}
