package commands

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/returns"
)

// ReturnOrderCommandHandler orchestrates the return workflow: read the
// stored order, run the pure return pipeline over the snapshot, mark the
// order returned on success.
type ReturnOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the return command. The returned outcome is always
// populated; the error is reserved for an improperly constructed command.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand,
) (returns.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return returns.Outcome{}, err
	}

	now := time.Now()
	failure := returns.Outcome{OrderNumber: cmd.OrderNumber(), Reasons: []string{internalFailureReason}}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logInternalError(h.logger, "return", err)
		return failure, nil
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	checkOrderExists, err := fetchOrderSnapshot(ctx, uow.OrderRepository(), cmd.OrderNumber())
	if err != nil {
		logInternalError(h.logger, "return", err)
		return failure, nil
	}

	state := returns.Validate(returns.Unvalidated{
		OrderNumber: cmd.OrderNumber(),
		Reason:      cmd.Reason(),
		Items:       cmd.Items(),
	})
	state = returns.VerifyOrder(state, checkOrderExists, now)
	state = returns.CalculateRefund(state)
	state = returns.Finalize(state, now)

	if processed, ok := state.(returns.Processed); ok {
		if err := uow.OrderRepository().UpdateStatus(ctx, processed.OrderNumber, kernel.StatusReturned); err != nil {
			logInternalError(h.logger, "return", err)
			return failure, nil
		}
		if err := uow.Commit(ctx); err != nil {
			logInternalError(h.logger, "return", err)
			return failure, nil
		}
	}

	return returns.ToOutcome(state), nil
}
