package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob manages the scheduled dispatch of queued orders.
// Runs every second to bind the oldest Created order to an active courier.
type OrderAssignmentJob struct {
	handler commands.AssignOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAssignmentJob creates a new job for dispatching orders.
// Uses AssignOrderCommandHandler to process one assignment per tick.
func NewOrderAssignmentJob(handler commands.AssignOrderCommandHandler, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_assignment_job"),
	}
}

// Start begins the order assignment job to run every second.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and an empty roster are normal idle states
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoActiveCouriersFound) {
				j.logger.ErrorContext(ctx, "Order assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every second)")
	return nil
}

// Stop stops the order assignment job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
