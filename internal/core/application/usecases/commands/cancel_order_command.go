package commands

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand carries a raw cancellation request: the order number
// and the customer's stated reason.
type CancelOrderCommand struct {
	orderNumber string
	reason      string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an existing order.
func NewCancelOrderCommand(orderNumber string, reason string) CancelOrderCommand {
	return CancelOrderCommand{
		orderNumber: orderNumber,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNumber returns the raw order number.
func (c CancelOrderCommand) OrderNumber() string { return c.orderNumber }

// Reason returns the raw cancellation reason.
func (c CancelOrderCommand) Reason() string { return c.reason }
