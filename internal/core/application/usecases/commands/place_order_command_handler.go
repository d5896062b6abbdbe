package commands

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler orchestrates the placement workflow: batch-read
// the referenced catalog entries, run the pure placement pipeline over the
// snapshot, persist the confirmed order, project the outcome. Collaborator
// failures are logged and surfaced as a single generic failure reason.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the placement command. The returned outcome is always
// populated; the error is reserved for an improperly constructed command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return order.Outcome{}, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logInternalError(h.logger, "place", err)
		return order.Outcome{Reasons: []string{internalFailureReason}}, nil
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().GetByCodes(ctx, parseProductCodes(cmd.Lines()))
	if err != nil {
		logInternalError(h.logger, "place", err)
		return order.Outcome{Reasons: []string{internalFailureReason}}, nil
	}
	checkCatalog, checkInventory := catalogSnapshot(products)

	state := order.Validate(order.Unvalidated{
		Lines:      cmd.Lines(),
		Street:     cmd.Street(),
		City:       cmd.City(),
		PostalCode: cmd.PostalCode(),
		Country:    cmd.Country(),
	})
	state = order.VerifyProducts(state, checkCatalog)
	state = order.VerifyStock(state, checkInventory)
	state = order.Price(state)
	state = order.Confirm(state, now)

	if confirmed, ok := state.(order.Confirmed); ok {
		if err := uow.OrderRepository().Add(ctx, confirmed); err != nil {
			logInternalError(h.logger, "place", err)
			return order.Outcome{Reasons: []string{internalFailureReason}}, nil
		}
		if err := uow.Commit(ctx); err != nil {
			logInternalError(h.logger, "place", err)
			return order.Outcome{Reasons: []string{internalFailureReason}}, nil
		}
	}

	return order.ToOutcome(state), nil
}
