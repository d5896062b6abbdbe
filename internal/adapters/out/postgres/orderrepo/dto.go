// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for stored orders,
// handling the conversion between pipeline states and database rows.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for a stored order: the header
// row keyed by the generated order number, with the priced lines in a child
// table.
type OrderDTO struct {
	OrderNumber string `gorm:"primaryKey;size:32"`
	Street      string
	City        string
	PostalCode  string
	Country     string
	TotalAmount decimal.Decimal `gorm:"type:numeric"`
	Status      string          `gorm:"index"`
	PlacedAt    time.Time
	Items       []OrderItemDTO `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced order line.
type OrderItemDTO struct {
	ID          uint   `gorm:"primaryKey"`
	OrderNumber string `gorm:"index"`
	ProductCode string
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	Quantity    decimal.Decimal `gorm:"type:numeric"`
	LineTotal   decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts a confirmed order to its database representation.
func fromDomain(confirmed order.Confirmed) OrderDTO {
	items := make([]OrderItemDTO, 0, len(confirmed.Lines))
	for _, line := range confirmed.Lines {
		items = append(items, OrderItemDTO{
			OrderNumber: confirmed.OrderNumber.Value(),
			ProductCode: line.ProductCode.Value(),
			ProductName: line.ProductName,
			UnitPrice:   line.Price,
			Quantity:    line.Quantity.Value(),
			LineTotal:   line.LineTotal,
		})
	}

	return OrderDTO{
		OrderNumber: confirmed.OrderNumber.Value(),
		Street:      confirmed.ShippingAddress.Street(),
		City:        confirmed.ShippingAddress.City(),
		PostalCode:  confirmed.ShippingAddress.PostalCode(),
		Country:     confirmed.ShippingAddress.Country(),
		TotalAmount: confirmed.TotalPrice,
		Status:      kernel.StatusConfirmed.String(),
		PlacedAt:    confirmed.PlacedAt,
		Items:       items,
	}
}

// toDetails converts a header row to the read-only details snapshot the
// lifecycle pipelines consume.
func toDetails(dto OrderDTO) (kernel.OrderDetails, error) {
	status, err := kernel.NewOrderStatus(dto.Status)
	if err != nil {
		return kernel.OrderDetails{}, err
	}

	return kernel.NewOrderDetails(dto.TotalAmount, dto.PlacedAt, status)
}
