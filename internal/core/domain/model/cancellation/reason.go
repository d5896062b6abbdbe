package cancellation

import (
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// reasonMinLength is the minimum length of a cancellation reason.
const reasonMinLength = 10

// ErrReasonIsNotConstructed is returned when attempting to use an
// improperly initialized Reason. Reasons must be created via NewReason.
var ErrReasonIsNotConstructed = errs.NewValueIsRequiredError(
	"cancellation reason must be created via NewReason constructor")

// Reason is the customer's explanation for cancelling an order. It must be
// at least ten characters long so support staff get something actionable.
type Reason struct {
	value string
	guard guard.ConstructorGuard
}

// NewReason creates a Reason from its raw string form.
func NewReason(raw string) (Reason, error) {
	if strings.TrimSpace(raw) == "" {
		return Reason{}, errs.NewValueIsRequiredError("reason")
	}

	if len(raw) < reasonMinLength {
		return Reason{}, errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must be at least %d characters long", reasonMinLength))
	}

	return Reason{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Reason was properly constructed.
func (r Reason) Validate() error {
	return r.guard.Validate(ErrReasonIsNotConstructed)
}

// Value returns the reason text.
func (r Reason) Value() string {
	return r.value
}

// String implements the fmt.Stringer interface.
func (r Reason) String() string {
	return r.value
}
