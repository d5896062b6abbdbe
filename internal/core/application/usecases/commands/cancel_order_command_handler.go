package commands

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/domain/model/cancellation"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler orchestrates the cancellation workflow: read
// the stored order, run the pure cancellation pipeline over the snapshot,
// mark the order cancelled on success.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the cancellation command. The returned outcome is
// always populated; the error is reserved for an improperly constructed
// command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand,
) (cancellation.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return cancellation.Outcome{}, err
	}

	now := time.Now()
	failure := cancellation.Outcome{OrderNumber: cmd.OrderNumber(), Reasons: []string{internalFailureReason}}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logInternalError(h.logger, "cancel", err)
		return failure, nil
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	checkOrderExists, err := fetchOrderSnapshot(ctx, uow.OrderRepository(), cmd.OrderNumber())
	if err != nil {
		logInternalError(h.logger, "cancel", err)
		return failure, nil
	}

	state := cancellation.Validate(cancellation.Unvalidated{
		OrderNumber: cmd.OrderNumber(),
		Reason:      cmd.Reason(),
	})
	state = cancellation.VerifyOrder(state, checkOrderExists)
	state = cancellation.CalculateRefund(state, now)
	state = cancellation.Finalize(state, now)

	if cancelled, ok := state.(cancellation.Cancelled); ok {
		if err := uow.OrderRepository().UpdateStatus(ctx, cancelled.OrderNumber, kernel.StatusCancelled); err != nil {
			logInternalError(h.logger, "cancel", err)
			return failure, nil
		}
		if err := uow.Commit(ctx); err != nil {
			logInternalError(h.logger, "cancel", err)
			return failure, nil
		}
	}

	return cancellation.ToOutcome(state), nil
}
