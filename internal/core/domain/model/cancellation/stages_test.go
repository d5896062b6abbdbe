package cancellation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/domain/model/cancellation"
	"ordermanagement/internal/core/domain/model/kernel"
)

const orderNumber = "ORD-20240315-ABCDEF12"

var cancelNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func validCancelRequest() cancellation.Unvalidated {
	return cancellation.Unvalidated{
		OrderNumber: orderNumber,
		Reason:      "No longer needed, ordered by mistake",
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

func TestValidate(t *testing.T) {
	t.Run("valid request becomes validated", func(t *testing.T) {
		state := cancellation.Validate(validCancelRequest())

		validated, ok := state.(cancellation.Validated)
		require.True(t, ok)
		assert.Equal(t, orderNumber, validated.OrderNumber.Value())
	})

	t.Run("bad order number short-circuits before the reason check", func(t *testing.T) {
		state := cancellation.Validate(cancellation.Unvalidated{OrderNumber: "ORDER-1", Reason: "x"})

		invalid, ok := state.(cancellation.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{
			"Invalid order number format: ORDER-1. Expected format: ORD-YYYYMMDD-XXXXXXXX",
		}, invalid.Reasons)
	})

	t.Run("short reason is rejected", func(t *testing.T) {
		state := cancellation.Validate(cancellation.Unvalidated{OrderNumber: orderNumber, Reason: "too short"})

		invalid, ok := state.(cancellation.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{"Cancellation reason must be at least 10 characters long"}, invalid.Reasons)
	})
}

func TestVerifyOrder(t *testing.T) {
	validated := cancellation.Validate(validCancelRequest())

	t.Run("confirmed order is verified", func(t *testing.T) {
		check := orderStore(t, decimal.NewFromInt(200), cancelNow.Add(-time.Hour), kernel.StatusConfirmed)

		state := cancellation.VerifyOrder(validated, check)

		_, ok := state.(cancellation.OrderVerified)
		assert.True(t, ok)
	})

	t.Run("missing order fails", func(t *testing.T) {
		check := func(kernel.OrderNumber) (bool, kernel.OrderDetails) { return false, kernel.OrderDetails{} }

		state := cancellation.VerifyOrder(validated, check)

		invalid, ok := state.(cancellation.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{"Order " + orderNumber + " not found or does not exist"}, invalid.Reasons)
	})

	t.Run("shipped order cannot be cancelled", func(t *testing.T) {
		check := orderStore(t, decimal.NewFromInt(200), cancelNow.Add(-time.Hour), kernel.StatusShipped)

		state := cancellation.VerifyOrder(validated, check)

		invalid, ok := state.(cancellation.Invalid)
		require.True(t, ok)
		assert.Equal(t, []string{
			"Order " + orderNumber + " cannot be cancelled. Current status: Shipped. Only confirmed orders can be cancelled.",
		}, invalid.Reasons)
	})
}

func TestCalculateRefundTiers(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    time.Duration
		wantRefund decimal.Decimal
	}{
		{name: "10 hours is a full refund", elapsed: 10 * time.Hour, wantRefund: decimal.NewFromInt(200)},
		{name: "exactly 24 hours is still a full refund", elapsed: 24 * time.Hour, wantRefund: decimal.NewFromInt(200)},
		{name: "30 hours refunds 80 percent", elapsed: 30 * time.Hour, wantRefund: decimal.NewFromInt(160)},
		{name: "exactly 48 hours refunds 80 percent", elapsed: 48 * time.Hour, wantRefund: decimal.NewFromInt(160)},
		{name: "5 days refunds 50 percent", elapsed: 5 * 24 * time.Hour, wantRefund: decimal.NewFromInt(100)},
		{name: "exactly 7 days refunds 50 percent", elapsed: 7 * 24 * time.Hour, wantRefund: decimal.NewFromInt(100)},
		{name: "10 days refunds nothing", elapsed: 10 * 24 * time.Hour, wantRefund: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := orderStore(t, decimal.NewFromInt(200), cancelNow.Add(-tt.elapsed), kernel.StatusConfirmed)
			verified := cancellation.VerifyOrder(cancellation.Validate(validCancelRequest()), check)

			state := cancellation.CalculateRefund(verified, cancelNow)

			calculated, ok := state.(cancellation.RefundCalculated)
			require.True(t, ok)
			assert.True(t, calculated.RefundAmount.Equal(tt.wantRefund),
				"want %s, got %s", tt.wantRefund, calculated.RefundAmount)
		})
	}
}

func TestCancelScenario(t *testing.T) {
	check := orderStore(t, decimal.NewFromInt(200), cancelNow.Add(-30*time.Hour), kernel.StatusConfirmed)

	outcome := cancellation.Cancel(validCancelRequest(), check, cancelNow)

	require.True(t, outcome.Success)
	assert.Equal(t, orderNumber, outcome.OrderNumber)
	assert.True(t, outcome.RefundAmount.Equal(decimal.NewFromInt(160)))
	assert.Equal(t, cancelNow, outcome.CancelledDate)
	assert.Contains(t, outcome.Summary, "Order "+orderNumber+" has been successfully cancelled.\n")
	assert.Contains(t, outcome.Summary, "- Original Order Total: $200.00\n")
	assert.Contains(t, outcome.Summary, "- Refund Amount: $160.00 (80% of total)\n")
	assert.Contains(t, outcome.Summary, "- Cancellation Reason: No longer needed, ordered by mistake\n")
	assert.Contains(t, outcome.Summary, "The refund will be processed within 3-5 business days.")
}

func TestCancelShippedOrderFails(t *testing.T) {
	check := orderStore(t, decimal.NewFromInt(200), cancelNow.Add(-time.Hour), kernel.StatusShipped)

	outcome := cancellation.Cancel(validCancelRequest(), check, cancelNow)

	require.False(t, outcome.Success)
	require.Len(t, outcome.Reasons, 1)
	assert.Contains(t, outcome.Reasons[0], "cannot be cancelled")
	assert.Contains(t, outcome.Reasons[0], "Shipped")
}

func TestToOutcomeZeroTotalReportsZeroPercent(t *testing.T) {
	check := orderStore(t, decimal.Zero, cancelNow.Add(-time.Hour), kernel.StatusConfirmed)

	outcome := cancellation.Cancel(validCancelRequest(), check, cancelNow)

	require.True(t, outcome.Success)
	assert.True(t, outcome.RefundAmount.IsZero())
	assert.Contains(t, outcome.Summary, "- Refund Amount: $0.00 (0% of total)\n")
}

func TestToOutcomeNonTerminalStates(t *testing.T) {
	tests := []struct {
		name  string
		state cancellation.State
		want  string
	}{
		{name: "unvalidated", state: cancellation.Unvalidated{}, want: "Unexpected unvalidated state"},
		{name: "validated", state: cancellation.Validated{}, want: "Unexpected validated state"},
		{name: "order verified", state: cancellation.OrderVerified{}, want: "Unexpected order verified state"},
		{name: "refund calculated", state: cancellation.RefundCalculated{}, want: "Unexpected refund calculated state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := cancellation.ToOutcome(tt.state)

			assert.False(t, outcome.Success)
			assert.Equal(t, []string{tt.want}, outcome.Reasons)
		})
	}
}

func TestToOutcomeIsIdempotent(t *testing.T) {
	check := orderStore(t, decimal.NewFromInt(200), cancelNow.Add(-time.Hour), kernel.StatusConfirmed)
	state := cancellation.Finalize(
		cancellation.CalculateRefund(
			cancellation.VerifyOrder(cancellation.Validate(validCancelRequest()), check),
			cancelNow),
		cancelNow)

	first := cancellation.ToOutcome(state)
	second := cancellation.ToOutcome(state)

	assert.Equal(t, first, second)
}
