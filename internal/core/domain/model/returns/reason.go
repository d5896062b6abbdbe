package returns

import (
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// reasonMinLength is the minimum length of a return reason.
const reasonMinLength = 10

// ErrReasonIsNotConstructed is returned when attempting to use an
// improperly initialized Reason. Reasons must be created via NewReason.
var ErrReasonIsNotConstructed = errs.NewValueIsRequiredError(
	"return reason must be created via NewReason constructor")

// ReasonType categorizes a return reason. The category decides who pays
// the return shipping: the company for its own faults, the customer when
// they simply changed their mind.
type ReasonType int

const (
	// ReasonTypeUnknown represents an invalid or undefined reason type.
	ReasonTypeUnknown ReasonType = iota

	// ReasonTypeDefective - product defective, no shipping fee.
	ReasonTypeDefective

	// ReasonTypeWrongItem - wrong item shipped, no shipping fee.
	ReasonTypeWrongItem

	// ReasonTypeNotAsDescribed - item not as described, no shipping fee.
	ReasonTypeNotAsDescribed

	// ReasonTypeChangedMind - customer changed their mind and pays the
	// return shipping fee.
	ReasonTypeChangedMind
)

// String returns the compact name of the reason type.
func (t ReasonType) String() string {
	switch t {
	case ReasonTypeDefective:
		return "Defective"
	case ReasonTypeWrongItem:
		return "WrongItem"
	case ReasonTypeNotAsDescribed:
		return "NotAsDescribed"
	case ReasonTypeChangedMind:
		return "ChangedMind"
	default:
		return "Unknown"
	}
}

// Description returns the customer-facing wording used in return
// summaries.
func (t ReasonType) Description() string {
	switch t {
	case ReasonTypeDefective:
		return "Defective Product"
	case ReasonTypeWrongItem:
		return "Wrong Item Shipped"
	case ReasonTypeNotAsDescribed:
		return "Not As Described"
	case ReasonTypeChangedMind:
		return "Customer Changed Mind"
	default:
		return "Other"
	}
}

// Reason is the customer's explanation for a return, at least ten
// characters long, together with the ReasonType derived from it.
type Reason struct {
	value      string
	reasonType ReasonType
	guard      guard.ConstructorGuard
}

// NewReason creates a Reason from its raw string form and classifies it.
//
// Classification is by case-insensitive keyword match, checked in priority
// order: defect/damaged/broken -> Defective; wrong/incorrect/mistake ->
// WrongItem; "not as described"/different -> NotAsDescribed; anything
// else -> ChangedMind.
func NewReason(raw string) (Reason, error) {
	if strings.TrimSpace(raw) == "" {
		return Reason{}, errs.NewValueIsRequiredError("returnReason")
	}

	if len(raw) < reasonMinLength {
		return Reason{}, errs.NewValueIsInvalidErrorWithCause("returnReason",
			fmt.Errorf("must be at least %d characters long", reasonMinLength))
	}

	return Reason{
		value:      raw,
		reasonType: classifyReason(raw),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func classifyReason(raw string) ReasonType {
	lower := strings.ToLower(raw)

	if strings.Contains(lower, "defect") || strings.Contains(lower, "damaged") || strings.Contains(lower, "broken") {
		return ReasonTypeDefective
	}
	if strings.Contains(lower, "wrong") || strings.Contains(lower, "incorrect") || strings.Contains(lower, "mistake") {
		return ReasonTypeWrongItem
	}
	if strings.Contains(lower, "not as described") || strings.Contains(lower, "different") {
		return ReasonTypeNotAsDescribed
	}
	return ReasonTypeChangedMind
}

// Validate checks if the Reason was properly constructed.
func (r Reason) Validate() error {
	return r.guard.Validate(ErrReasonIsNotConstructed)
}

// Value returns the reason text.
func (r Reason) Value() string {
	return r.value
}

// Type returns the derived reason category.
func (r Reason) Type() ReasonType {
	return r.reasonType
}

// String implements the fmt.Stringer interface.
func (r Reason) String() string {
	return r.value
}
