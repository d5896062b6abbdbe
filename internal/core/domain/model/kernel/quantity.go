package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when attempting to use an improperly
// initialized Quantity. Quantities must be created via NewQuantity or
// NewQuantityFromString.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity or NewQuantityFromString constructors")

// Quantity is a strictly positive decimal amount of a product.
// Quantity is an immutable value object; arithmetic on it is exact decimal
// arithmetic, never floating point. The zero value is invalid and fails
// validation - use the constructors to create instances.
type Quantity struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity from a decimal value.
// The value must be strictly greater than zero.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if !value.IsPositive() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than zero", value))
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewQuantityFromString parses a Quantity from its raw string form.
//
// Returns:
//   - Quantity: A valid quantity instance
//   - error: ValueIsInvalidError if the string is not a number or is not
//     strictly greater than zero
func NewQuantityFromString(raw string) (Quantity, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}

	return NewQuantity(value)
}

// Validate checks if the Quantity was properly constructed.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the decimal amount.
func (q Quantity) Value() decimal.Decimal {
	return q.value
}

// IsEqual compares two quantities numerically.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// String implements the fmt.Stringer interface. Trailing zeros are not
// printed: a quantity of 2 renders as "2", 2.5 as "2.5".
func (q Quantity) String() string {
	return q.value.String()
}
