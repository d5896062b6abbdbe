package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product
// catalog.
type ProductRepository interface {
	// Add persists a catalog entry. Used by catalog seeding.
	Add(ctx context.Context, entry *product.Product) error

	// Get retrieves one catalog entry by code.
	// Returns errs.ObjectNotFoundError when the code is unknown.
	Get(ctx context.Context, code kernel.ProductCode) (*product.Product, error)

	// GetByCodes batch-reads catalog entries for the given codes. Unknown
	// codes are simply absent from the result; the caller decides whether
	// that is an error.
	GetByCodes(ctx context.Context, codes []kernel.ProductCode) ([]*product.Product, error)
}
