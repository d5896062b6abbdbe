package commands

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/domain/model/modification"
)

// ModifyOrderCommandHandler orchestrates the modification workflow: read
// the stored order and the referenced catalog entries, run the pure
// modification pipeline over the snapshots, write the recalculated total
// back on success.
type ModifyOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewModifyOrderCommandHandler creates a handler for order modification.
func NewModifyOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ModifyOrderCommandHandler {
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the modification command. The returned outcome is
// always populated; the error is reserved for an improperly constructed
// command.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand,
) (modification.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return modification.Outcome{}, err
	}

	now := time.Now()
	failure := modification.Outcome{OrderNumber: cmd.OrderNumber(), Reasons: []string{internalFailureReason}}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logInternalError(h.logger, "modify", err)
		return failure, nil
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	checkOrderExists, err := fetchOrderSnapshot(ctx, uow.OrderRepository(), cmd.OrderNumber())
	if err != nil {
		logInternalError(h.logger, "modify", err)
		return failure, nil
	}

	products, err := uow.ProductRepository().GetByCodes(ctx, parseProductCodes(cmd.NewLines()))
	if err != nil {
		logInternalError(h.logger, "modify", err)
		return failure, nil
	}
	checkCatalog, checkInventory := catalogSnapshot(products)

	state := modification.Validate(modification.Unvalidated{
		OrderNumber: cmd.OrderNumber(),
		NewLines:    cmd.NewLines(),
	})
	state = modification.VerifyOrder(state, checkOrderExists, now)
	state = modification.VerifyProductsAndStock(state, checkCatalog, checkInventory)
	state = modification.RecalculatePrice(state)
	state = modification.Finalize(state, now)

	if modified, ok := state.(modification.Modified); ok {
		if err := uow.OrderRepository().UpdateTotal(ctx, modified.OrderNumber, modified.NewTotalPrice); err != nil {
			logInternalError(h.logger, "modify", err)
			return failure, nil
		}
		if err := uow.Commit(ctx); err != nil {
			logInternalError(h.logger, "modify", err)
			return failure, nil
		}
	}

	return modification.ToOutcome(state), nil
}
