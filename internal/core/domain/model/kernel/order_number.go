package kernel

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

const (
	// OrderNumberPrefix starts every order number.
	OrderNumberPrefix = "ORD-"

	// OrderNumberMinLength is the minimum length of a well-formed order
	// number ("ORD-YYYYMMDD-XXXXXXXX" is 21 characters).
	OrderNumberMinLength = 20
)

// ErrOrderNumberIsNotConstructed is returned when attempting to use an
// improperly initialized OrderNumber. Order numbers must be created via
// NewOrderNumber or GenerateOrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or GenerateOrderNumber constructors")

// OrderNumber identifies a placed order.
// The format is "ORD-YYYYMMDD-XXXXXXXX" where the suffix is eight uppercase
// hexadecimal characters taken from a random UUID. OrderNumber is an
// immutable value object; the zero value is invalid and fails validation.
//
// Example:
//
//	num, err := kernel.NewOrderNumber("ORD-20240101-ABCDEF12")
//	if err != nil {
//	    // Handle validation error
//	}
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber creates an OrderNumber from its raw string form.
// The string must start with "ORD-" and be at least OrderNumberMinLength
// characters long.
func NewOrderNumber(raw string) (OrderNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}

	if !strings.HasPrefix(raw, OrderNumberPrefix) || len(raw) < OrderNumberMinLength {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match format ORD-YYYYMMDD-XXXXXXXX", raw))
	}

	return OrderNumber{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// GenerateOrderNumber creates a fresh OrderNumber for the given moment.
// The random suffix makes collisions improbable but not impossible; global
// uniqueness is enforced by the order store, not here.
func GenerateOrderNumber(now time.Time) OrderNumber {
	return OrderNumber{
		value: fmt.Sprintf("%s%s-%s", OrderNumberPrefix, now.Format("20060102"), RandomNumberSuffix()),
		guard: guard.NewConstructorGuard(),
	}
}

// RandomNumberSuffix returns eight uppercase hexadecimal characters from a
// random UUID, used as the tail of order and return numbers.
func RandomNumberSuffix() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Validate checks if the OrderNumber was properly constructed.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// Value returns the raw order number string.
func (n OrderNumber) Value() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// String implements the fmt.Stringer interface.
func (n OrderNumber) String() string {
	return n.value
}
