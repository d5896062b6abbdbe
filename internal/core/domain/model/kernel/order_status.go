package kernel

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// OrderStatus represents the lifecycle state of a stored order as seen by
// the lifecycle pipelines.
//
// State transitions:
//
//	Confirmed ──┬──> Shipped ──> Delivered
//	            ├──> Cancelled
//	            └──> Returned
//
// Only Confirmed orders are eligible for modification, cancellation or
// return; the verify stages of the pipelines enforce that rule.
type OrderStatus string

const (
	// StatusConfirmed is the initial status of a successfully placed order.
	StatusConfirmed OrderStatus = "Confirmed"

	// StatusCancelled indicates the customer cancelled the order.
	StatusCancelled OrderStatus = "Cancelled"

	// StatusReturned indicates a processed return of the order.
	StatusReturned OrderStatus = "Returned"

	// StatusShipped indicates the order left the warehouse.
	StatusShipped OrderStatus = "Shipped"

	// StatusDelivered indicates the order reached the customer.
	StatusDelivered OrderStatus = "Delivered"
)

// getValidOrderStatuses returns the set of valid OrderStatus values.
func getValidOrderStatuses() map[OrderStatus]struct{} {
	return map[OrderStatus]struct{}{
		StatusConfirmed: {},
		StatusCancelled: {},
		StatusReturned:  {},
		StatusShipped:   {},
		StatusDelivered: {},
	}
}

// NewOrderStatus creates an OrderStatus from its string form, validating it
// against the known set. Used when statuses arrive from external sources
// such as the database.
func NewOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the OrderStatus value is one of the known statuses.
func (s OrderStatus) Validate() error {
	if _, ok := getValidOrderStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (s OrderStatus) String() string {
	return string(s)
}
