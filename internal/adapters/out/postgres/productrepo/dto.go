// Package productrepo provides data transfer objects and mapping functions
// for the product catalog.
package productrepo

import (
	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for a catalog entry, keyed by
// the product code.
type ProductDTO struct {
	Code  string `gorm:"primaryKey;size:6"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric"`
	Stock decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a catalog entry to its database representation.
func fromDomain(entry *product.Product) ProductDTO {
	return ProductDTO{
		Code:  entry.Code().Value(),
		Name:  entry.Name(),
		Price: entry.Price(),
		Stock: entry.Stock(),
	}
}

// toDomain converts a database row to a catalog entry.
func toDomain(dto ProductDTO) (*product.Product, error) {
	code, err := kernel.NewProductCode(dto.Code)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(code, dto.Name, dto.Price, dto.Stock)
}
