// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain pipelines and read projections straight
// from the database, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves summaries of every stored order for listing
// and reporting.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all order summaries.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is one order summary row: enough for listings
// and the periodic status report, without the line detail.
type GetAllOrdersQueryResponse struct {
	OrderNumber string
	TotalAmount decimal.Decimal
	Status      string
	PlacedAt    time.Time
	City        string
	Country     string
}
