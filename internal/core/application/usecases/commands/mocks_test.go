package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, confirmed order.Confirmed) error {
	args := m.Called(ctx, confirmed)
	return args.Error(0)
}

func (m *MockOrderRepository) GetDetails(ctx context.Context, number kernel.OrderNumber,
) (kernel.OrderDetails, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(kernel.OrderDetails), args.Error(1)
}

func (m *MockOrderRepository) UpdateTotal(ctx context.Context, number kernel.OrderNumber,
	newTotal decimal.Decimal,
) error {
	args := m.Called(ctx, number, newTotal)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, number kernel.OrderNumber,
	status kernel.OrderStatus,
) error {
	args := m.Called(ctx, number, status)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}

func (m *MockProductRepository) Get(_ context.Context, _ kernel.ProductCode) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockProductRepository) GetByCodes(ctx context.Context, codes []kernel.ProductCode,
) ([]*product.Product, error) {
	args := m.Called(ctx, codes)
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustProduct(t *testing.T, rawCode string, name string, price float64, stock int64) *product.Product {
	t.Helper()
	code, err := kernel.NewProductCode(rawCode)
	require.NoError(t, err)
	entry, err := product.NewProduct(code, name, decimal.NewFromFloat(price), decimal.NewFromInt(stock))
	require.NoError(t, err)
	return entry
}

func mustDetails(t *testing.T, total float64, placedAgo time.Duration, status kernel.OrderStatus,
) kernel.OrderDetails {
	t.Helper()
	details, err := kernel.NewOrderDetails(
		decimal.NewFromFloat(total), time.Now().Add(-placedAgo), status)
	require.NoError(t, err)
	return details
}
