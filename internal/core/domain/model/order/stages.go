package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Validate parses every order line and the shipping address, collecting
// all format errors before failing. An Unvalidated state becomes Validated
// or Invalid; every other state passes through.
func Validate(state State) State {
	request, ok := state.(Unvalidated)
	if !ok {
		return state
	}

	var reasons []string
	validatedLines := make([]ValidatedLine, 0, len(request.Lines))

	for _, line := range request.Lines {
		if validLine, lineReasons := validateLine(line); len(lineReasons) > 0 {
			reasons = append(reasons, lineReasons...)
		} else {
			validatedLines = append(validatedLines, validLine)
		}
	}

	address, err := kernel.NewAddress(request.Street, request.City, request.PostalCode, request.Country)
	if err != nil {
		reasons = append(reasons, "Invalid shipping address: all fields must be provided")
	}

	if len(reasons) > 0 {
		return Invalid{Lines: request.Lines, Reasons: reasons}
	}

	return Validated{Lines: validatedLines, ShippingAddress: address}
}

// validateLine parses one raw line. All reasons for the line are reported
// together, not just the first.
func validateLine(line UnvalidatedLine) (ValidatedLine, []string) {
	var reasons []string

	code, codeErr := kernel.NewProductCode(line.ProductCode)
	if codeErr != nil {
		reasons = append(reasons, fmt.Sprintf("Invalid product code: %s", line.ProductCode))
	}

	qty, qtyErr := kernel.NewQuantityFromString(line.Quantity)
	if qtyErr != nil {
		reasons = append(reasons, fmt.Sprintf("Invalid quantity for product %s: %s", line.ProductCode, line.Quantity))
	}

	if len(reasons) > 0 {
		return ValidatedLine{}, reasons
	}

	return ValidatedLine{ProductCode: code, Quantity: qty}, nil
}

// VerifyProducts confirms every validated line against the catalog
// snapshot, attaching product names and unit prices. Unknown codes fail
// the whole order.
func VerifyProducts(state State, checkProductCatalog kernel.CheckProductCatalog) State {
	request, ok := state.(Validated)
	if !ok {
		return state
	}

	var reasons []string
	verifiedLines := make([]ProductVerifiedLine, 0, len(request.Lines))

	for _, line := range request.Lines {
		exists, name, price := checkProductCatalog(line.ProductCode)
		if !exists {
			reasons = append(reasons, fmt.Sprintf("Product not found: %s", line.ProductCode))
			continue
		}

		verifiedLines = append(verifiedLines, ProductVerifiedLine{
			ProductCode: line.ProductCode,
			ProductName: name,
			Price:       price,
			Quantity:    line.Quantity,
		})
	}

	if len(reasons) > 0 {
		return Invalid{Lines: revertValidatedLines(request.Lines), Reasons: reasons}
	}

	return ProductVerified{Lines: verifiedLines, ShippingAddress: request.ShippingAddress}
}

// VerifyStock checks the inventory snapshot for every verified line. When
// everything is in stock the state passes through unchanged.
func VerifyStock(state State, checkInventory kernel.CheckInventory) State {
	request, ok := state.(ProductVerified)
	if !ok {
		return state
	}

	var reasons []string

	for _, line := range request.Lines {
		if !checkInventory(line.ProductCode, line.Quantity) {
			reasons = append(reasons, fmt.Sprintf("Insufficient stock for product %s (%s). Requested: %s",
				line.ProductCode, line.ProductName, line.Quantity))
		}
	}

	if len(reasons) > 0 {
		return Invalid{Lines: revertVerifiedLines(request.Lines), Reasons: reasons}
	}

	return request
}

// Price computes line totals and the order total.
func Price(state State) State {
	request, ok := state.(ProductVerified)
	if !ok {
		return state
	}

	pricedLines := make([]PricedLine, 0, len(request.Lines))
	totalPrice := decimal.Zero

	for _, line := range request.Lines {
		priced := PriceLine(line)
		pricedLines = append(pricedLines, priced)
		totalPrice = totalPrice.Add(priced.LineTotal)
	}

	return Priced{Lines: pricedLines, ShippingAddress: request.ShippingAddress, TotalPrice: totalPrice}
}

// Confirm assigns a fresh order number and stamps the placement time,
// producing the terminal success state.
func Confirm(state State, now time.Time) State {
	request, ok := state.(Priced)
	if !ok {
		return state
	}

	return Confirmed{
		Lines:           request.Lines,
		ShippingAddress: request.ShippingAddress,
		TotalPrice:      request.TotalPrice,
		OrderNumber:     kernel.GenerateOrderNumber(now),
		PlacedAt:        now,
	}
}

// Place runs the whole placement pipeline over a raw request and projects
// the final state. now is read exactly once per run.
func Place(request Unvalidated, checkProductCatalog kernel.CheckProductCatalog,
	checkInventory kernel.CheckInventory, now time.Time,
) Outcome {
	state := Validate(request)
	state = VerifyProducts(state, checkProductCatalog)
	state = VerifyStock(state, checkInventory)
	state = Price(state)
	state = Confirm(state, now)
	return ToOutcome(state)
}

func revertValidatedLines(lines []ValidatedLine) []UnvalidatedLine {
	reverted := make([]UnvalidatedLine, 0, len(lines))
	for _, line := range lines {
		reverted = append(reverted, line.asUnvalidated())
	}
	return reverted
}

func revertVerifiedLines(lines []ProductVerifiedLine) []UnvalidatedLine {
	reverted := make([]UnvalidatedLine, 0, len(lines))
	for _, line := range lines {
		reverted = append(reverted, line.asUnvalidated())
	}
	return reverted
}
