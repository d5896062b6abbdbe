package kernel

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// ErrOrderDetailsIsNotConstructed is returned when attempting to use an
// improperly initialized OrderDetails. Details must be created via
// NewOrderDetails.
var ErrOrderDetailsIsNotConstructed = errs.NewValueIsRequiredError(
	"order details must be created via NewOrderDetails constructor")

// OrderDetails is the order store's read-only view of an existing order:
// its total, placement date and current status. The lifecycle pipelines use
// it for eligibility checks and refund math and never mutate it.
type OrderDetails struct {
	totalAmount decimal.Decimal
	orderDate   time.Time
	status      OrderStatus
	guard       guard.ConstructorGuard
}

// NewOrderDetails creates an OrderDetails snapshot.
// The total amount must not be negative and the status must be a known
// order status.
func NewOrderDetails(totalAmount decimal.Decimal, orderDate time.Time, status OrderStatus) (OrderDetails, error) {
	if totalAmount.IsNegative() {
		return OrderDetails{}, errs.NewValueIsOutOfRangeError("totalAmount", totalAmount, 0, nil)
	}

	if err := status.Validate(); err != nil {
		return OrderDetails{}, err
	}

	return OrderDetails{
		totalAmount: totalAmount,
		orderDate:   orderDate,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the OrderDetails was properly constructed.
func (d OrderDetails) Validate() error {
	return d.guard.Validate(ErrOrderDetailsIsNotConstructed)
}

// TotalAmount returns the stored order total.
func (d OrderDetails) TotalAmount() decimal.Decimal {
	return d.totalAmount
}

// OrderDate returns the moment the order was placed.
func (d OrderDetails) OrderDate() time.Time {
	return d.orderDate
}

// Status returns the current order status.
func (d OrderDetails) Status() OrderStatus {
	return d.status
}
