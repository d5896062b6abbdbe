package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
)

const cancelOrderNumber = "ORD-20240310-12345678"

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCancelOrderCommand(cancelOrderNumber, "Found a better price elsewhere")

	details := mustDetails(t, 200.00, 30*time.Hour, kernel.StatusConfirmed)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetDetails", mock.Anything, mock.Anything).Return(details, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, mock.Anything, kernel.StatusCancelled).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, testLogger())
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, cancelOrderNumber, outcome.OrderNumber)
	assert.True(t, outcome.RefundAmount.Equal(decimal.NewFromInt(160)))
	assert.Contains(t, outcome.Summary, "(80% of total)")
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_InvalidOrderNumberSkipsLookup(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCancelOrderCommand("bad-number", "Found a better price elsewhere")

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, testLogger())
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, outcome.Success)
	assert.Equal(t, []string{
		"Invalid order number format: bad-number. Expected format: ORD-YYYYMMDD-XXXXXXXX",
	}, outcome.Reasons)
	orderRepo.AssertNotCalled(t, "GetDetails", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderNotCancelled(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCancelOrderCommand(cancelOrderNumber, "Found a better price elsewhere")

	details := mustDetails(t, 200.00, 30*time.Hour, kernel.StatusShipped)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetDetails", mock.Anything, mock.Anything).Return(details, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, testLogger())
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Reasons,
		"Order ORD-20240310-12345678 cannot be cancelled. Current status: Shipped. "+
			"Only confirmed orders can be cancelled.")
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory, testLogger())

	_, err := h.Handle(ctx, commands.CancelOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
