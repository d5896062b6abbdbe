package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"ordermanagement/internal/core/application/usecases/queries"
)

// OrderReportJob periodically logs a summary of the order store: how many
// orders sit in each status. Intended as an operational heartbeat, not a
// customer-facing report.
type OrderReportJob struct {
	handler  queries.GetAllOrdersQueryHandler
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// NewOrderReportJob creates a job that reports order counts by status on the
// given cron schedule (standard five-field expression, e.g. "*/5 * * * *").
func NewOrderReportJob(handler queries.GetAllOrdersQueryHandler, schedule string,
	logger *slog.Logger,
) *OrderReportJob {
	return &OrderReportJob{
		handler:  handler,
		cron:     cron.New(),
		logger:   logger.With("component", "order_report_job"),
		schedule: schedule,
	}
}

// Start schedules the report job.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetAllOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, row := range orders {
			byStatus[row.Status]++
		}

		j.logger.InfoContext(ctx, "Order store report",
			"total", len(orders),
			"by_status", byStatus)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
