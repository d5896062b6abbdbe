package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
// The lifecycle pipelines never touch it; the workflow orchestrators read
// snapshots through it before a pipeline runs and write back afterwards.
type OrderRepository interface {
	// Add persists a freshly confirmed order: header and priced lines,
	// keyed by the generated order number. A duplicate order number is
	// surfaced as an error, not absorbed.
	Add(ctx context.Context, confirmed order.Confirmed) error

	// GetDetails retrieves the stored details snapshot for an order.
	// Returns errs.ObjectNotFoundError when no such order exists.
	GetDetails(ctx context.Context, number kernel.OrderNumber) (kernel.OrderDetails, error)

	// UpdateTotal replaces the stored total amount after a successful
	// modification.
	UpdateTotal(ctx context.Context, number kernel.OrderNumber, newTotal decimal.Decimal) error

	// UpdateStatus moves the stored order to a new status after a
	// successful cancellation or return.
	UpdateStatus(ctx context.Context, number kernel.OrderNumber, status kernel.OrderStatus) error
}
