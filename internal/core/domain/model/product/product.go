package product

import (
	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
		"product must be created via NewProduct constructor")
)

// Product is a catalog entry: a sellable item identified by its product
// code, with a display name, a unit price and the quantity currently in
// stock. The lifecycle pipelines never see Product directly; the workflow
// orchestrators turn catalog reads into snapshot check functions.
//
// Business rules:
//   - The product code must be a valid kernel.ProductCode
//   - The name must be non-empty
//   - Unit price and stock must not be negative
type Product struct {
	code  kernel.ProductCode
	name  string
	price decimal.Decimal
	stock decimal.Decimal
	guard guard.ConstructorGuard
}

// NewProduct creates a catalog entry. This is the only way to create a
// valid Product instance; it is used both for new entries and when
// restoring rows from storage.
func NewProduct(code kernel.ProductCode, name string, price decimal.Decimal, stock decimal.Decimal) (*Product, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	if price.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("price", price, 0, nil)
	}

	if stock.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("stock", stock, 0, nil)
	}

	return &Product{
		code:  code,
		name:  name,
		price: price,
		stock: stock,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Product was properly constructed.
func (p *Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Code returns the catalog code.
func (p *Product) Code() kernel.ProductCode {
	return p.code
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the quantity currently in stock.
func (p *Product) Stock() decimal.Decimal {
	return p.stock
}

// IsInStock reports whether the requested quantity can be fulfilled from
// the current stock.
func (p *Product) IsInStock(qty kernel.Quantity) bool {
	if err := qty.Validate(); err != nil {
		return false
	}
	return p.stock.GreaterThanOrEqual(qty.Value())
}
