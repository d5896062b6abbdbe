package productrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/pkg/errs"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a catalog entry.
func (r *GormProductRepository) Add(ctx context.Context, entry *product.Product) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves one catalog entry by code.
func (r *GormProductRepository) Get(ctx context.Context, code kernel.ProductCode) (*product.Product, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", code.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCodes batch-reads catalog entries. Unknown codes are simply absent
// from the result.
func (r *GormProductRepository) GetByCodes(ctx context.Context, codes []kernel.ProductCode,
) ([]*product.Product, error) {
	if len(codes) == 0 {
		return []*product.Product{}, nil
	}

	values := make([]string, 0, len(codes))
	for _, code := range codes {
		if err := code.Validate(); err != nil {
			return nil, err
		}
		values = append(values, code.Value())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "code IN ?", values).Error; err != nil {
		return nil, err
	}

	entries := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
