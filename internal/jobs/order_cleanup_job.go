package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCleanupJob removes cancelled shipments from every order on a schedule.
type OrderCleanupJob struct {
	handler  commands.CleanOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderCleanupJob creates a new job running CleanOrdersCommandHandler on
// schedule, a six-field cron expression with seconds.
func NewOrderCleanupJob(handler commands.CleanOrdersCommandHandler, schedule string, logger *slog.Logger) *OrderCleanupJob {
	return &OrderCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_cleanup_job"),
	}
}

// Start schedules the job.
func (j *OrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order cleanup job started", "schedule", j.schedule)
	return nil
}

// RunOnce cleans every order now and returns how many shipments were removed.
func (j *OrderCleanupJob) RunOnce(ctx context.Context) int {
	removed, err := j.handler.Handle(ctx, commands.NewCleanOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order cleanup job failed", "error", err)
		return 0
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Cancelled shipments removed", "count", removed)
	}
	return removed
}

// Stop stops the order cleanup job.
func (j *OrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order cleanup job stopped")
}
