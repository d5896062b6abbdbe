package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand carries a raw placement request: order lines and
// shipping address parts exactly as the customer submitted them. The
// command performs no field validation of its own - malformed values are
// the pipeline's job to report, all of them at once.
type PlaceOrderCommand struct {
	lines      []order.UnvalidatedLine
	street     string
	city       string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
func NewPlaceOrderCommand(lines []order.UnvalidatedLine,
	street string, city string, postalCode string, country string,
) PlaceOrderCommand {
	return PlaceOrderCommand{
		lines:      lines,
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Lines returns the raw order lines.
func (c PlaceOrderCommand) Lines() []order.UnvalidatedLine {
	return c.lines
}

// Street returns the raw street line.
func (c PlaceOrderCommand) Street() string { return c.street }

// City returns the raw city.
func (c PlaceOrderCommand) City() string { return c.city }

// PostalCode returns the raw postal code.
func (c PlaceOrderCommand) PostalCode() string { return c.postalCode }

// Country returns the raw country.
func (c PlaceOrderCommand) Country() string { return c.country }
