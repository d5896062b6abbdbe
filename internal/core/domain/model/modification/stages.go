package modification

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// modificationWindow bounds how long after placement an order may still be
// modified.
const modificationWindow = 24 * time.Hour

// Validate parses the order number and every replacement line, collecting
// all format errors before failing. At least one replacement line is
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

	validatedLines := make([]order.ValidatedLine, 0, len(request.NewLines))
	if len(request.NewLines) == 0 {
		reasons = append(reasons, "At least one product must be specified for order modification")
	} else {
		for _, line := range request.NewLines {
			var lineReasons []string

			code, codeErr := kernel.NewProductCode(line.ProductCode)
			if codeErr != nil {
				lineReasons = append(lineReasons, fmt.Sprintf("Invalid product code: %s", line.ProductCode))
			}

			qty, qtyErr := kernel.NewQuantityFromString(line.Quantity)
			if qtyErr != nil {
				lineReasons = append(lineReasons,
					fmt.Sprintf("Invalid quantity for product %s: %s", line.ProductCode, line.Quantity))
			}

			if len(lineReasons) > 0 {
				reasons = append(reasons, lineReasons...)
				continue
			}

			validatedLines = append(validatedLines, order.ValidatedLine{ProductCode: code, Quantity: qty})
		}
	}

	if len(reasons) > 0 {
		return Invalid{OrderNumber: request.OrderNumber, Reasons: reasons}
	}

	return Validated{OrderNumber: number, NewLines: validatedLines}
}

// VerifyOrder checks that the order exists, is still Confirmed and was
// placed no more than 24 hours before now. The window message reports the
// elapsed hours to one decimal.
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
				"Order %s cannot be modified. Current status: %s. Only confirmed orders can be modified.",
				request.OrderNumber, details.Status())},
		}
	}

	elapsed := now.Sub(details.OrderDate())
	if elapsed > modificationWindow {
		return Invalid{
			OrderNumber: request.OrderNumber.Value(),
			Reasons: []string{fmt.Sprintf(
				"Order %s cannot be modified. Orders can only be modified within 24 hours of placement. "+
					"This order was placed %.1f hours ago.",
				request.OrderNumber, elapsed.Hours())},
		}
	}

	return OrderVerified{
		OrderNumber:     request.OrderNumber,
		NewLines:        request.NewLines,
		OriginalDetails: details,
	}
}

// VerifyProductsAndStock runs the combined catalog and inventory check per
// replacement line. A line failing the catalog check is not checked
// against inventory.
func VerifyProductsAndStock(state State, checkProductCatalog kernel.CheckProductCatalog,
	checkInventory kernel.CheckInventory,
) State {
	request, ok := state.(OrderVerified)
	if !ok {
		return state
	}

	var reasons []string
	verifiedLines := make([]order.ProductVerifiedLine, 0, len(request.NewLines))

	for _, line := range request.NewLines {
		exists, name, price := checkProductCatalog(line.ProductCode)
		if !exists {
			reasons = append(reasons, fmt.Sprintf("Product not found: %s", line.ProductCode))
			continue
		}

		if !checkInventory(line.ProductCode, line.Quantity) {
			reasons = append(reasons, fmt.Sprintf("Insufficient stock for product %s (%s). Requested: %s",
				line.ProductCode, name, line.Quantity))
			continue
		}

		verifiedLines = append(verifiedLines, order.ProductVerifiedLine{
			ProductCode: line.ProductCode,
			ProductName: name,
			Price:       price,
			Quantity:    line.Quantity,
		})
	}

	if len(reasons) > 0 {
		return Invalid{OrderNumber: request.OrderNumber.Value(), Reasons: reasons}
	}

	return ProductsVerified{
		OrderNumber:     request.OrderNumber,
		NewLines:        verifiedLines,
		OriginalDetails: request.OriginalDetails,
	}
}

// RecalculatePrice prices the replacement lines and computes the signed
// difference from the original total.
func RecalculatePrice(state State) State {
	request, ok := state.(ProductsVerified)
	if !ok {
		return state
	}

	pricedLines := make([]order.PricedLine, 0, len(request.NewLines))
	newTotal := decimal.Zero

	for _, line := range request.NewLines {
		priced := order.PriceLine(line)
		pricedLines = append(pricedLines, priced)
		newTotal = newTotal.Add(priced.LineTotal)
	}

	return PriceRecalculated{
		OrderNumber:     request.OrderNumber,
		NewLines:        pricedLines,
		OriginalDetails: request.OriginalDetails,
		NewTotalPrice:   newTotal,
		PriceDifference: newTotal.Sub(request.OriginalDetails.TotalAmount()),
	}
}

// Finalize stamps the modification time, producing the terminal success
// state.
func Finalize(state State, now time.Time) State {
	request, ok := state.(PriceRecalculated)
	if !ok {
		return state
	}

	return Modified{
		OrderNumber:     request.OrderNumber,
		NewLines:        request.NewLines,
		NewTotalPrice:   request.NewTotalPrice,
		PriceDifference: request.PriceDifference,
		ModifiedAt:      now,
	}
}

// Modify runs the whole modification pipeline over a raw request and
// projects the final state. now is read exactly once per run.
func Modify(request Unvalidated, checkOrderExists kernel.CheckOrderExists,
	checkProductCatalog kernel.CheckProductCatalog, checkInventory kernel.CheckInventory,
	now time.Time,
) Outcome {
	state := Validate(request)
	state = VerifyOrder(state, checkOrderExists, now)
	state = VerifyProductsAndStock(state, checkProductCatalog, checkInventory)
	state = RecalculatePrice(state)
	state = Finalize(state, now)
	return ToOutcome(state)
}
