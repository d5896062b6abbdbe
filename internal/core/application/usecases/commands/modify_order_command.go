package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"
)

var ErrModifyOrderCommandIsNotConstructed = errors.New(
	"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
)

// ModifyOrderCommand carries a raw modification request: the order number
// and the replacement lines as the customer submitted them.
type ModifyOrderCommand struct {
	orderNumber string
	newLines    []order.UnvalidatedLine

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a command to modify an existing order.
func NewModifyOrderCommand(orderNumber string, newLines []order.UnvalidatedLine) ModifyOrderCommand {
	return ModifyOrderCommand{
		orderNumber: orderNumber,
		newLines:    newLines,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// OrderNumber returns the raw order number.
func (c ModifyOrderCommand) OrderNumber() string { return c.orderNumber }

// NewLines returns the raw replacement lines.
func (c ModifyOrderCommand) NewLines() []order.UnvalidatedLine { return c.newLines }
