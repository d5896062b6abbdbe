package cancellation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Refund tiers by elapsed time since placement. Boundaries are inclusive:
// exactly 24 hours still refunds 100%, exactly 48 hours 80%, exactly seven
// days 50%.
var (
	fullRefund    = decimal.NewFromInt(1)
	highRefund    = decimal.NewFromFloat(0.80)
	partialRefund = decimal.NewFromFloat(0.50)
)

// Validate parses the order number and the cancellation reason. Unlike the
// other pipelines this validation short-circuits on the first failing
// field.
func Validate(state State) State {
	request, ok := state.(Unvalidated)
	if !ok {
		return state
	}

	number, numberErr := kernel.NewOrderNumber(request.OrderNumber)
	if numberErr != nil {
		return Invalid{
			OrderNumber: request.OrderNumber,
			Reason:      request.Reason,
			Reasons: []string{fmt.Sprintf(
				"Invalid order number format: %s. Expected format: ORD-YYYYMMDD-XXXXXXXX", request.OrderNumber)},
		}
	}

	reason, reasonErr := NewReason(request.Reason)
	if reasonErr != nil {
		return Invalid{
			OrderNumber: request.OrderNumber,
			Reason:      request.Reason,
			Reasons:     []string{"Cancellation reason must be at least 10 characters long"},
		}
	}

	return Validated{OrderNumber: number, Reason: reason}
}

// VerifyOrder checks that the order exists and is still Confirmed.
func VerifyOrder(state State, checkOrderExists kernel.CheckOrderExists) State {
	request, ok := state.(Validated)
	if !ok {
		return state
	}

	exists, details := checkOrderExists(request.OrderNumber)
	if !exists {
		return Invalid{
			OrderNumber: request.OrderNumber.Value(),
			Reason:      request.Reason.Value(),
			Reasons:     []string{fmt.Sprintf("Order %s not found or does not exist", request.OrderNumber)},
		}
	}

	if details.Status() != kernel.StatusConfirmed {
		return Invalid{
			OrderNumber: request.OrderNumber.Value(),
			Reason:      request.Reason.Value(),
			Reasons: []string{fmt.Sprintf(
				"Order %s cannot be cancelled. Current status: %s. Only confirmed orders can be cancelled.",
				request.OrderNumber, details.Status())},
		}
	}

	return OrderVerified{
		OrderNumber:  request.OrderNumber,
		Reason:       request.Reason,
		OrderDetails: details,
	}
}

// CalculateRefund applies the tiered refund policy:
//
//	within 24 hours  -> 100%
//	within 48 hours  ->  80%
//	within 7 days    ->  50%
//	after 7 days     ->   0%
func CalculateRefund(state State, now time.Time) State {
	request, ok := state.(OrderVerified)
	if !ok {
		return state
	}

	elapsed := now.Sub(request.OrderDetails.OrderDate())

	var refundPercentage decimal.Decimal
	switch {
	case elapsed <= 24*time.Hour:
		refundPercentage = fullRefund
	case elapsed <= 48*time.Hour:
		refundPercentage = highRefund
	case elapsed <= 7*24*time.Hour:
		refundPercentage = partialRefund
	default:
		refundPercentage = decimal.Zero
	}

	return RefundCalculated{
		OrderNumber:  request.OrderNumber,
		Reason:       request.Reason,
		OrderDetails: request.OrderDetails,
		RefundAmount: request.OrderDetails.TotalAmount().Mul(refundPercentage),
	}
}

// Finalize stamps the cancellation time, producing the terminal success
// state.
func Finalize(state State, now time.Time) State {
	request, ok := state.(RefundCalculated)
	if !ok {
		return state
	}

	return Cancelled{
		OrderNumber:  request.OrderNumber,
		Reason:       request.Reason,
		OrderDetails: request.OrderDetails,
		RefundAmount: request.RefundAmount,
		CancelledAt:  now,
	}
}

// Cancel runs the whole cancellation pipeline over a raw request and
// projects the final state. now is read exactly once per run.
func Cancel(request Unvalidated, checkOrderExists kernel.CheckOrderExists, now time.Time) Outcome {
	state := Validate(request)
	state = VerifyOrder(state, checkOrderExists)
	state = CalculateRefund(state, now)
	state = Finalize(state, now)
	return ToOutcome(state)
}
