package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/returns"
	"ordermanagement/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand carries a raw return request: the order number, the
// customer's stated reason and the items being sent back.
type ReturnOrderCommand struct {
	orderNumber string
	reason      string
	items       []returns.UnvalidatedItem

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return items from an existing order.
func NewReturnOrderCommand(orderNumber string, reason string, items []returns.UnvalidatedItem,
) ReturnOrderCommand {
	return ReturnOrderCommand{
		orderNumber: orderNumber,
		reason:      reason,
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderNumber returns the raw order number.
func (c ReturnOrderCommand) OrderNumber() string { return c.orderNumber }

// Reason returns the raw return reason.
func (c ReturnOrderCommand) Reason() string { return c.reason }

// Items returns the raw returned items.
func (c ReturnOrderCommand) Items() []returns.UnvalidatedItem { return c.items }
