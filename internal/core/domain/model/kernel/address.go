package kernel

import (
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a shipping destination.
// All four fields are required and must be non-blank. Address is an
// immutable value object; the zero value is invalid and fails validation.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address from its four parts.
// Every part must contain at least one non-whitespace character.
func NewAddress(street string, city string, postalCode string, country string) (Address, error) {
	if strings.TrimSpace(street) == "" ||
		strings.TrimSpace(city) == "" ||
		strings.TrimSpace(postalCode) == "" ||
		strings.TrimSpace(country) == "" {
		return Address{}, errs.NewValueIsRequiredError("street, city, postalCode, country")
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Address was properly constructed.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// String implements the fmt.Stringer interface.
//
// Example:
//
//	fmt.Println(addr) // Output: 1 Main St, Springfield, 12345, USA
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.street, a.city, a.postalCode, a.country)
}
