package order

import (
	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Order lines pass through one refinement chain during placement:
// UnvalidatedLine -> ValidatedLine -> ProductVerifiedLine -> PricedLine.
// Each step adds the data proven at that stage and nothing more.

// UnvalidatedLine is a raw order line exactly as the customer supplied it.
type UnvalidatedLine struct {
	ProductCode string
	Quantity    string
}

// ValidatedLine is a line whose product code and quantity parsed into
// value objects.
type ValidatedLine struct {
	ProductCode kernel.ProductCode
	Quantity    kernel.Quantity
}

// asUnvalidated reverts a validated line to its raw form for error
// reporting on Invalid states.
func (l ValidatedLine) asUnvalidated() UnvalidatedLine {
	return UnvalidatedLine{
		ProductCode: l.ProductCode.Value(),
		Quantity:    l.Quantity.Value().String(),
	}
}

// ProductVerifiedLine is a validated line confirmed against the catalog,
// carrying the product name and unit price.
type ProductVerifiedLine struct {
	ProductCode kernel.ProductCode
	ProductName string
	Price       decimal.Decimal
	Quantity    kernel.Quantity
}

func (l ProductVerifiedLine) asUnvalidated() UnvalidatedLine {
	return UnvalidatedLine{
		ProductCode: l.ProductCode.Value(),
		Quantity:    l.Quantity.Value().String(),
	}
}

// PricedLine is a verified line with its total computed:
// LineTotal = Price × Quantity, unrounded.
type PricedLine struct {
	ProductCode kernel.ProductCode
	ProductName string
	Price       decimal.Decimal
	Quantity    kernel.Quantity
	LineTotal   decimal.Decimal
}

// PriceLine computes the line total for a verified line.
func PriceLine(line ProductVerifiedLine) PricedLine {
	return PricedLine{
		ProductCode: line.ProductCode,
		ProductName: line.ProductName,
		Price:       line.Price,
		Quantity:    line.Quantity,
		LineTotal:   line.Price.Mul(line.Quantity.Value()),
	}
}
