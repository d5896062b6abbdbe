package modification_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/modification"
	"ordermanagement/internal/core/domain/model/order"
)

const orderNumber = "ORD-20240315-ABCDEF12"

var modifyNow = time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

func validModifyRequest() modification.Unvalidated {
	return modification.Unvalidated{
		OrderNumber: orderNumber,
		NewLines: []order.UnvalidatedLine{
			{ProductCode: "AB1234", Quantity: "3"},
		},
	}
}

func orderStore(t *testing.T, total decimal.Decimal, placedAt time.Time, status kernel.OrderStatus) kernel.CheckOrderExists {
	t.Helper()
	details, err := kernel.NewOrderDetails(total, placedAt, status)
	require.NoError(t, err)
	return func(num kernel.OrderNumber) (bool, kernel.OrderDetails) {
		if num.Value() != orderNumber {
			return false, kernel.OrderDetails{}
		}
		return true, details
	}
}

func catalogWith(prices map[string]decimal.Decimal) kernel.CheckProductCatalog {
	return func(code kernel.ProductCode) (bool, string, decimal.Decimal) {
		price, ok := prices[code.Value()]
		if !ok {
			return false, "", decimal.Zero
		}
		return true, "Product " + code.Value(), price
	}
}

func unlimitedInventory(kernel.ProductCode, kernel.Quantity) bool { return true }

func TestValidate(t *testing.T) {
	t.Run("valid request becomes validated", func(t *testing.T) {
		state := modification.Validate(validModifyRequest())

		validated, ok := state.(modification.Validated)
		require.True(t, ok)
		assert.Equal(t, orderNumber, validated.OrderNumber.Value())
		require.Len(t, validated.NewLines, 1)
	})

	t.Run("bad order number and empty line set are both reported", func(t *testing.T) {
		state := modification.Validate(modification.Unvalidated{OrderNumber: "ORDER-1"})

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{
			"Invalid order number format: ORDER-1. Expected format: ORD-YYYYMMDD-XXXXXXXX",
			"At least one product must be specified for order modification",
		}, invalid.Reasons)
	})

	t.Run("line format errors are collected", func(t *testing.T) {
		request := validModifyRequest()
		request.NewLines = []order.UnvalidatedLine{{ProductCode: "oops", Quantity: "0"}}

		state := modification.Validate(request)

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{
			"Invalid product code: oops",
			"Invalid quantity for product oops: 0",
		}, invalid.Reasons)
	})
}

func TestVerifyOrder(t *testing.T) {
	validated := modification.Validate(validModifyRequest())

	t.Run("confirmed recent order is verified", func(t *testing.T) {
		check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-10*time.Hour), kernel.StatusConfirmed)

		state := modification.VerifyOrder(validated, check, modifyNow)

		verified, ok := state.(modification.OrderVerified)
		require.True(t, ok)
		assert.True(t, verified.OriginalDetails.TotalAmount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("missing order fails", func(t *testing.T) {
		check := func(kernel.OrderNumber) (bool, kernel.OrderDetails) { return false, kernel.OrderDetails{} }

		state := modification.VerifyOrder(validated, check, modifyNow)

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{"Order " + orderNumber + " not found or does not exist"}, invalid.Reasons)
	})

	t.Run("shipped order cannot be modified", func(t *testing.T) {
		check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-time.Hour), kernel.StatusShipped)

		state := modification.VerifyOrder(validated, check, modifyNow)

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{
			"Order " + orderNumber + " cannot be modified. Current status: Shipped. Only confirmed orders can be modified.",
		}, invalid.Reasons)
	})

	t.Run("window message reports elapsed hours to one decimal", func(t *testing.T) {
		check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-30*time.Hour-30*time.Minute), kernel.StatusConfirmed)

		state := modification.VerifyOrder(validated, check, modifyNow)

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{
			"Order " + orderNumber + " cannot be modified. Orders can only be modified within 24 hours of placement. " +
				"This order was placed 30.5 hours ago.",
		}, invalid.Reasons)
	})

	t.Run("exactly 24 hours is still inside the window", func(t *testing.T) {
		check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-24*time.Hour), kernel.StatusConfirmed)

		state := modification.VerifyOrder(validated, check, modifyNow)

		_, ok := state.(modification.OrderVerified)
		assert.True(t, ok)
	})
}

func TestVerifyProductsAndStock(t *testing.T) {
	check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-time.Hour), kernel.StatusConfirmed)
	verified := modification.VerifyOrder(modification.Validate(validModifyRequest()), check, modifyNow)

	t.Run("known in-stock products are verified", func(t *testing.T) {
		catalog := catalogWith(map[string]decimal.Decimal{"AB1234": decimal.NewFromInt(40)})

		state := modification.VerifyProductsAndStock(verified, catalog, unlimitedInventory)

		products, ok := state.(modification.ProductsVerified)
		require.True(t, ok)
		require.Len(t, products.NewLines, 1)
		assert.Equal(t, "Product AB1234", products.NewLines[0].ProductName)
	})

	t.Run("unknown product skips the inventory check", func(t *testing.T) {
		catalog := catalogWith(nil)
		inventoryCalled := false
		inventory := func(kernel.ProductCode, kernel.Quantity) bool {
			inventoryCalled = true
			return true
		}

		state := modification.VerifyProductsAndStock(verified, catalog, inventory)

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{"Product not found: AB1234"}, invalid.Reasons)
		assert.False(t, inventoryCalled)
	})

	t.Run("insufficient stock is reported with name and quantity", func(t *testing.T) {
		catalog := catalogWith(map[string]decimal.Decimal{"AB1234": decimal.NewFromInt(40)})
		noStock := func(kernel.ProductCode, kernel.Quantity) bool { return false }

		state := modification.VerifyProductsAndStock(verified, catalog, noStock)

		invalid, ok := state.(modification.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{"Insufficient stock for product AB1234 (Product AB1234). Requested: 3"}, invalid.Reasons)
	})
}

func TestRecalculatePriceDifferenceSign(t *testing.T) {
	check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-time.Hour), kernel.StatusConfirmed)

	t.Run("higher new total means additional charge", func(t *testing.T) {
		catalog := catalogWith(map[string]decimal.Decimal{"AB1234": decimal.NewFromInt(40)})
		state := modification.RecalculatePrice(modification.VerifyProductsAndStock(
			modification.VerifyOrder(modification.Validate(validModifyRequest()), check, modifyNow),
			catalog, unlimitedInventory))

		recalculated, ok := state.(modification.PriceRecalculated)
		require.True(t, ok)
		assert.True(t, recalculated.NewTotalPrice.Equal(decimal.NewFromInt(120)))
		assert.True(t, recalculated.PriceDifference.Equal(decimal.NewFromInt(20)))
	})

	t.Run("lower new total means refund", func(t *testing.T) {
		request := validModifyRequest()
		request.NewLines = []order.UnvalidatedLine{{ProductCode: "AB1234", Quantity: "2"}}
		catalog := catalogWith(map[string]decimal.Decimal{"AB1234": decimal.NewFromInt(40)})

		state := modification.RecalculatePrice(modification.VerifyProductsAndStock(
			modification.VerifyOrder(modification.Validate(request), check, modifyNow),
			catalog, unlimitedInventory))

		recalculated, ok := state.(modification.PriceRecalculated)
		require.True(t, ok)
		assert.True(t, recalculated.NewTotalPrice.Equal(decimal.NewFromInt(80)))
		assert.True(t, recalculated.PriceDifference.Equal(decimal.NewFromInt(-20)))
	})
}

func TestModifyScenario(t *testing.T) {
	check := orderStore(t, decimal.NewFromInt(100), modifyNow.Add(-time.Hour), kernel.StatusConfirmed)
	catalog := catalogWith(map[string]decimal.Decimal{"AB1234": decimal.NewFromInt(40)})

	outcome := modification.Modify(validModifyRequest(), check, catalog, unlimitedInventory, modifyNow)

	require.True(t, outcome.Success)
	assert.Equal(t, orderNumber, outcome.OrderNumber)
	assert.True(t, outcome.NewTotalPrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, outcome.PriceDifference.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, modifyNow, outcome.ModifiedDate)
	assert.Contains(t, outcome.Summary, "Order "+orderNumber+" has been successfully modified.\n")
	assert.Contains(t, outcome.Summary, "New Order Total: $120.00\n")
	assert.Contains(t, outcome.Summary, "Additional Charge: $20.00\n")
	assert.Contains(t, outcome.Summary, "The additional amount will be charged to your payment method.\n")
}

func TestModifyPassThroughKeepsEarlyFailure(t *testing.T) {
	check := func(kernel.OrderNumber) (bool, kernel.OrderDetails) {
		t.Fatal("order store must not be consulted for an invalid request")
		return false, kernel.OrderDetails{}
	}
	catalog := catalogWith(nil)

	outcome := modification.Modify(modification.Unvalidated{OrderNumber: ""}, check, catalog, unlimitedInventory, modifyNow)

	require.False(t, outcome.Success)
	assert.Equal(t, []string{
		"Invalid order number format: . Expected format: ORD-YYYYMMDD-XXXXXXXX",
		"At least one product must be specified for order modification",
	}, outcome.Reasons)
}
