// Package modification implements the modify-order pipeline:
//
//	Unvalidated -> Validated -> OrderVerified -> ProductsVerified ->
//	PriceRecalculated -> Modified
//
// with Invalid as the terminal failure state. A modification is a full
// replacement of the order lines, never a merge. Each stage transforms the
// one variant it recognizes and passes every other variant through, so the
// pipeline composes as a straight function chain with no I/O of its own.
package modification

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// State is the sealed union of modify-order pipeline states.
type State interface {
	isState()
}

// Unvalidated is the raw modification request: the order number and the
// replacement lines exactly as supplied.
type Unvalidated struct {
	OrderNumber string
	NewLines    []order.UnvalidatedLine
}

func (Unvalidated) isState() {}

// Invalid is the terminal failure state.
type Invalid struct {
	OrderNumber string
	Reasons     []string
}

func (Invalid) isState() {}

// Validated holds a parsed order number and parsed replacement lines.
type Validated struct {
	OrderNumber kernel.OrderNumber
	NewLines    []order.ValidatedLine
}

func (Validated) isState() {}

// OrderVerified adds the stored order details once the order proved to
// exist, be Confirmed and sit inside the modification window.
type OrderVerified struct {
	OrderNumber     kernel.OrderNumber
	NewLines        []order.ValidatedLine
	OriginalDetails kernel.OrderDetails
}

func (OrderVerified) isState() {}

// ProductsVerified holds replacement lines confirmed against catalog and
// inventory.
type ProductsVerified struct {
	OrderNumber     kernel.OrderNumber
	NewLines        []order.ProductVerifiedLine
	OriginalDetails kernel.OrderDetails
}

func (ProductsVerified) isState() {}

// PriceRecalculated carries the new total and its signed difference from
// the original total: positive means an additional charge, negative a
// refund, zero no change.
type PriceRecalculated struct {
	OrderNumber     kernel.OrderNumber
	NewLines        []order.PricedLine
	OriginalDetails kernel.OrderDetails
	NewTotalPrice   decimal.Decimal
	PriceDifference decimal.Decimal
}

func (PriceRecalculated) isState() {}

// Modified is the terminal success state. ModifiedAt is the pipeline's
// single clock reading.
type Modified struct {
	OrderNumber     kernel.OrderNumber
	NewLines        []order.PricedLine
	NewTotalPrice   decimal.Decimal
	PriceDifference decimal.Decimal
	ModifiedAt      time.Time
}

func (Modified) isState() {}
