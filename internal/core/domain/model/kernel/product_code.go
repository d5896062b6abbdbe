package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// productCodePattern defines the catalog code format: two uppercase letters
// followed by four digits, e.g. "AB1234".
var productCodePattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

// ErrProductCodeIsNotConstructed is returned when attempting to use an improperly
// initialized ProductCode. Product codes must be created via NewProductCode.
var ErrProductCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"product code must be created via NewProductCode constructor")

// ProductCode identifies a product in the catalog.
// ProductCode is an immutable value object; the zero value is invalid and
// fails validation - use the constructor to create instances.
//
// Example:
//
//	code, err := kernel.NewProductCode("AB1234")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(code) // Output: AB1234
type ProductCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewProductCode creates a ProductCode from its raw string form.
// The string must match the "AA0000" format (two uppercase letters, four digits).
//
// Returns:
//   - ProductCode: A valid product code instance
//   - error: ValueIsRequiredError for blank input, ValueIsInvalidError for a
//     string that does not match the format
func NewProductCode(raw string) (ProductCode, error) {
	if strings.TrimSpace(raw) == "" {
		return ProductCode{}, errs.NewValueIsRequiredError("productCode")
	}

	if !productCodePattern.MatchString(raw) {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause("productCode",
			fmt.Errorf("%q does not match format AA0000", raw))
	}

	return ProductCode{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the ProductCode was properly constructed.
//
// Returns:
//   - error: ErrProductCodeIsNotConstructed for a zero value, nil otherwise
func (c ProductCode) Validate() error {
	return c.guard.Validate(ErrProductCodeIsNotConstructed)
}

// Value returns the raw code string.
func (c ProductCode) Value() string {
	return c.value
}

// IsEqual compares two product codes by value.
func (c ProductCode) IsEqual(other ProductCode) bool {
	return c.value == other.value
}

// String implements the fmt.Stringer interface.
func (c ProductCode) String() string {
	return c.value
}
