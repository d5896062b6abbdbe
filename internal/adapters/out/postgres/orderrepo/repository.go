package orderrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a freshly confirmed order: the header row and its priced lines.
func (r *GormOrderRepository) Add(ctx context.Context, confirmed order.Confirmed) error {
	if err := confirmed.OrderNumber.Validate(); err != nil {
		return err
	}

	dto := fromDomain(confirmed)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetDetails retrieves the stored details snapshot for an order.
func (r *GormOrderRepository) GetDetails(ctx context.Context, number kernel.OrderNumber,
) (kernel.OrderDetails, error) {
	if err := number.Validate(); err != nil {
		return kernel.OrderDetails{}, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.OrderDetails{}, errs.NewObjectNotFoundError("order", number.Value())
		}
		return kernel.OrderDetails{}, err
	}

	return toDetails(dto)
}

// UpdateTotal replaces the stored total amount after a successful
// modification.
func (r *GormOrderRepository) UpdateTotal(ctx context.Context, number kernel.OrderNumber,
	newTotal decimal.Decimal,
) error {
	if err := number.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_number = ?", number.Value()).
		Update("total_amount", newTotal)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", number.Value())
	}

	return nil
}

// UpdateStatus moves the stored order to a new status after a successful
// cancellation or return.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, number kernel.OrderNumber,
	status kernel.OrderStatus,
) error {
	if err := number.Validate(); err != nil {
		return err
	}

	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_number = ?", number.Value()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", number.Value())
	}

	return nil
}
