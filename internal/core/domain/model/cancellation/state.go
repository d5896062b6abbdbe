// Package cancellation implements the cancel-order pipeline:
//
//	Unvalidated -> Validated -> OrderVerified -> RefundCalculated -> Cancelled
//
// with Invalid as the terminal failure state. The refund is tiered by how
// long ago the order was placed; the tier boundaries are inclusive. Each
// stage transforms the one variant it recognizes and passes every other
// variant through, and the pipeline performs no I/O of its own.
package cancellation

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// State is the sealed union of cancel-order pipeline states.
type State interface {
	isState()
}

// Unvalidated is the raw cancellation request exactly as supplied.
type Unvalidated struct {
	OrderNumber string
	Reason      string
}

func (Unvalidated) isState() {}

// Invalid is the terminal failure state. Validation short-circuits on the
// first failing field, so Reasons holds a single entry.
type Invalid struct {
	OrderNumber string
	Reason      string
	Reasons     []string
}

func (Invalid) isState() {}

// Validated holds the parsed order number and cancellation reason.
type Validated struct {
	OrderNumber kernel.OrderNumber
	Reason      Reason
}

func (Validated) isState() {}

// OrderVerified adds the stored order details once the order proved to
// exist and still be Confirmed.
type OrderVerified struct {
	OrderNumber  kernel.OrderNumber
	Reason       Reason
	OrderDetails kernel.OrderDetails
}

func (OrderVerified) isState() {}

// RefundCalculated carries the tiered refund amount.
type RefundCalculated struct {
	OrderNumber  kernel.OrderNumber
	Reason       Reason
	OrderDetails kernel.OrderDetails
	RefundAmount decimal.Decimal
}

func (RefundCalculated) isState() {}

// Cancelled is the terminal success state. CancelledAt is the pipeline's
// single clock reading.
type Cancelled struct {
	OrderNumber  kernel.OrderNumber
	Reason       Reason
	OrderDetails kernel.OrderDetails
	RefundAmount decimal.Decimal
	CancelledAt  time.Time
}

func (Cancelled) isState() {}
