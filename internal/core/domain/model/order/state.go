// Package order implements the place-order pipeline: a sequence of pure
// stages pushing an order through the closed set of states
//
//	Unvalidated -> Validated -> ProductVerified -> Priced -> Confirmed
//
// with Invalid as the terminal failure state. Every stage is a total
// function over State: it transforms the one variant it recognizes and
// passes every other variant through untouched, so a state that went
// Invalid early stays Invalid to the end. The pipeline performs no I/O;
// catalog and inventory lookups arrive as snapshot check functions.
package order

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// State is the sealed union of place-order pipeline states. Only the
// variants in this package implement it.
type State interface {
	isState()
}

// Unvalidated is the raw placement request: order lines and address parts
// exactly as the customer supplied them.
type Unvalidated struct {
	Lines      []UnvalidatedLine
	Street     string
	City       string
	PostalCode string
	Country    string
}

func (Unvalidated) isState() {}

// Invalid is the terminal failure state, carrying every reason collected
// before the pipeline stopped.
type Invalid struct {
	Lines   []UnvalidatedLine
	Reasons []string
}

func (Invalid) isState() {}

// Validated holds parsed lines and a parsed shipping address.
type Validated struct {
	Lines           []ValidatedLine
	ShippingAddress kernel.Address
}

func (Validated) isState() {}

// ProductVerified holds lines confirmed against the catalog, each with
// name and unit price.
type ProductVerified struct {
	Lines           []ProductVerifiedLine
	ShippingAddress kernel.Address
}

func (ProductVerified) isState() {}

// Priced holds fully priced lines and the order total.
type Priced struct {
	Lines           []PricedLine
	ShippingAddress kernel.Address
	TotalPrice      decimal.Decimal
}

func (Priced) isState() {}

// Confirmed is the terminal success state: a numbered order ready to be
// persisted. PlacedAt is the pipeline's single clock reading, so
// projecting this state is pure.
type Confirmed struct {
	Lines           []PricedLine
	ShippingAddress kernel.Address
	TotalPrice      decimal.Decimal
	OrderNumber     kernel.OrderNumber
	PlacedAt        time.Time
}

func (Confirmed) isState() {}
