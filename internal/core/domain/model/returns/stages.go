package returns

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

const (
	// returnWindow bounds how long after placement a return is accepted.
	returnWindow = 14 * 24 * time.Hour

	// returnNumberPrefix starts every return number.
	returnNumberPrefix = "RET-"
)

// standardShippingFee is the flat return shipping fee charged when the
// customer changed their mind.
var standardShippingFee = decimal.NewFromFloat(15.00)

// Validate parses the order number, the return reason and every returned
// item, collecting all format errors before failing. At least one item is
// required.
func Validate(state State) State {
	request, ok := state.(Unvalidated)
	if !ok {
		return state
	}

	var reasons []string

	number, numberErr := kernel.NewOrderNumber(request.OrderNumber)
	if numberErr != nil {
		reasons = append(reasons, fmt.Sprintf(
			"Invalid order number format: %s. Expected format: ORD-YYYYMMDD-XXXXXXXX", request.OrderNumber))
	}

	reason, reasonErr := NewReason(request.Reason)
	if reasonErr != nil {
		reasons = append(reasons, "Return reason must be at least 10 characters long")
	}

	validatedItems := make([]ValidatedItem, 0, len(request.Items))
	if len(request.Items) == 0 {
		reasons = append(reasons, "At least one item must be specified for return")
	} else {
		for _, item := range request.Items {
			var itemReasons []string

			code, codeErr := kernel.NewProductCode(item.ProductCode)
			if codeErr != nil {
				itemReasons = append(itemReasons, fmt.Sprintf("Invalid product code: %s", item.ProductCode))
			}

			qty, qtyErr := kernel.NewQuantityFromString(item.Quantity)
			if qtyErr != nil {
				itemReasons = append(itemReasons,
					fmt.Sprintf("Invalid quantity for product %s: %s", item.ProductCode, item.Quantity))
			}

			if len(itemReasons) > 0 {
				reasons = append(reasons, itemReasons...)
				continue
			}

			validatedItems = append(validatedItems, ValidatedItem{ProductCode: code, Quantity: qty})
		}
	}

	if len(reasons) > 0 {
		return Invalid{OrderNumber: request.OrderNumber, Reasons: reasons}
	}

	return Validated{OrderNumber: number, Reason: reason, Items: validatedItems}
}

// VerifyOrder checks that the order exists, is still Confirmed and was
// placed no more than 14 days before now. The window message reports the
// elapsed whole days.
func VerifyOrder(state State, checkOrderExists kernel.CheckOrderExists, now time.Time) State {
	request, ok := state.(Validated)
	if !ok {
		return state
	}

	exists, details := checkOrderExists(request.OrderNumber)
	if !exists {
		return Invalid{
			OrderNumber: request.OrderNumber.Value(),
			Reasons:     []string{fmt.Sprintf("Order %s not found or does not exist", request.OrderNumber)},
		}
	}

	if details.Status() != kernel.StatusConfirmed {
		return Invalid{
			OrderNumber: request.OrderNumber.Value(),
			Reasons: []string{fmt.Sprintf(
				"Order %s cannot be returned. Current status: %s. Only confirmed orders can be returned.",
				request.OrderNumber, details.Status())},
		}
	}

	elapsed := now.Sub(details.OrderDate())
	if elapsed > returnWindow {
		return Invalid{
			OrderNumber: request.OrderNumber.Value(),
			Reasons: []string{fmt.Sprintf(
				"Return window expired. Orders can only be returned within 14 days of placement. "+
					"This order was placed %.0f days ago.", elapsed.Hours()/24)},
		}
	}

	return OrderVerified{
		OrderNumber:     request.OrderNumber,
		Reason:          request.Reason,
		Items:           request.Items,
		OriginalDetails: details,
	}
}

// CalculateRefund determines the shipping fee from the reason category and
// computes the refund as the full order total minus that fee. The returned
// item list is recorded but does not partition the refund.
func CalculateRefund(state State) State {
	verified, ok := state.(OrderVerified)
	if !ok {
		return state
	}

	shippingFee := decimal.Zero
	if verified.Reason.Type() == ReasonTypeChangedMind {
		shippingFee = standardShippingFee
	}

	return Approved{
		OrderNumber:     verified.OrderNumber,
		Reason:          verified.Reason,
		Items:           verified.Items,
		OriginalDetails: verified.OriginalDetails,
		RefundAmount:    verified.OriginalDetails.TotalAmount().Sub(shippingFee),
		ShippingFee:     shippingFee,
	}
}

// Finalize generates the return number and stamps the processing time,
// producing the terminal success state.
func Finalize(state State, now time.Time) State {
	request, ok := state.(Approved)
	if !ok {
		return state
	}

	return Processed{
		OrderNumber:  request.OrderNumber,
		Reason:       request.Reason,
		Items:        request.Items,
		RefundAmount: request.RefundAmount,
		ShippingFee:  request.ShippingFee,
		ProcessedAt:  now,
		ReturnNumber: fmt.Sprintf("%s%s-%s", returnNumberPrefix, now.Format("20060102"), kernel.RandomNumberSuffix()),
	}
}

// Return runs the whole return pipeline over a raw request and projects
// the final state. now is read exactly once per run.
func Return(request Unvalidated, checkOrderExists kernel.CheckOrderExists, now time.Time) Outcome {
	state := Validate(request)
	state = VerifyOrder(state, checkOrderExists, now)
	state = CalculateRefund(state)
	state = Finalize(state, now)
	return ToOutcome(state)
}
