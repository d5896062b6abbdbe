// Package returns implements the return-order pipeline:
//
//	Unvalidated -> Validated -> OrderVerified -> Approved -> Processed
//
// with Invalid as the terminal failure state. Returns are accepted within
// 14 days of placement for Confirmed orders; the refund is the full order
// total minus a flat shipping fee charged only when the customer simply
// changed their mind. Each stage transforms the one variant it recognizes
// and passes every other variant through, and the pipeline performs no
// I/O of its own.
package returns

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// UnvalidatedItem is a returned item exactly as the customer supplied it.
type UnvalidatedItem struct {
	ProductCode string
	Quantity    string
}

// ValidatedItem is a returned item whose code and quantity parsed into
// value objects.
type ValidatedItem struct {
	ProductCode kernel.ProductCode
	Quantity    kernel.Quantity
}

// State is the sealed union of return-order pipeline states.
type State interface {
	isState()
}

// Unvalidated is the raw return request exactly as supplied.
type Unvalidated struct {
	OrderNumber string
	Reason      string
	Items       []UnvalidatedItem
}

func (Unvalidated) isState() {}

// Invalid is the terminal failure state, carrying every reason collected
// before the pipeline stopped.
type Invalid struct {
	OrderNumber string
	Reasons     []string
}

func (Invalid) isState() {}

// Validated holds the parsed order number, classified reason and parsed
// items.
type Validated struct {
	OrderNumber kernel.OrderNumber
	Reason      Reason
	Items       []ValidatedItem
}

func (Validated) isState() {}

// OrderVerified adds the stored order details once the order proved to
// exist, be Confirmed and sit inside the return window.
type OrderVerified struct {
	OrderNumber     kernel.OrderNumber
	Reason          Reason
	Items           []ValidatedItem
	OriginalDetails kernel.OrderDetails
}

func (OrderVerified) isState() {}

// Approved carries the refund amount and the shipping fee withheld from
// it.
type Approved struct {
	OrderNumber     kernel.OrderNumber
	Reason          Reason
	Items           []ValidatedItem
	OriginalDetails kernel.OrderDetails
	RefundAmount    decimal.Decimal
	ShippingFee     decimal.Decimal
}

func (Approved) isState() {}

// Processed is the terminal success state: a numbered return.
// ProcessedAt is the pipeline's single clock reading.
type Processed struct {
	OrderNumber  kernel.OrderNumber
	Reason       Reason
	Items        []ValidatedItem
	RefundAmount decimal.Decimal
	ShippingFee  decimal.Decimal
	ProcessedAt  time.Time
	ReturnNumber string
}

func (Processed) isState() {}
