package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Outcome is the caller-facing result of the placement pipeline. Exactly
// one of the two shapes is populated: Success carries the order number,
// total and summary; failure carries the ordered reasons.
type Outcome struct {
	Success     bool
	OrderNumber string
	TotalPrice  decimal.Decimal
	PlacedDate  time.Time
	Summary     string
	Reasons     []string
}

// ToOutcome projects a final pipeline state into an Outcome. Every variant
// is mapped; a non-terminal variant reaching projection indicates a
// pipeline defect and becomes a failure, never a silent success.
func ToOutcome(state State) Outcome {
	switch s := state.(type) {
	case Unvalidated:
		return failedOutcome("Unexpected unvalidated state")
	case Validated:
		return failedOutcome("Unexpected validated state")
	case ProductVerified:
		return failedOutcome("Unexpected product verified state")
	case Priced:
		return failedOutcome("Unexpected priced state")
	case Invalid:
		return Outcome{Reasons: s.Reasons}
	case Confirmed:
		return successOutcome(s)
	default:
		return failedOutcome("Unexpected state")
	}
}

func failedOutcome(reason string) Outcome {
	return Outcome{Reasons: []string{reason}}
}

func successOutcome(confirmed Confirmed) Outcome {
	var summary strings.Builder
	fmt.Fprintf(&summary, "Order Number: %s\n", confirmed.OrderNumber)
	fmt.Fprintf(&summary, "Shipping Address: %s\n", confirmed.ShippingAddress)
	summary.WriteString("\n")
	summary.WriteString("Order Items:\n")
	for _, line := range confirmed.Lines {
		fmt.Fprintf(&summary, "  - %s (%s) x %s @ %s = %s\n",
			line.ProductName, line.ProductCode, line.Quantity,
			kernel.FormatMoney(line.Price), kernel.FormatMoney(line.LineTotal))
	}
	summary.WriteString("\n")
	fmt.Fprintf(&summary, "Total: %s\n", kernel.FormatMoney(confirmed.TotalPrice))

	return Outcome{
		Success:     true,
		OrderNumber: confirmed.OrderNumber.Value(),
		TotalPrice:  confirmed.TotalPrice,
		PlacedDate:  confirmed.PlacedAt,
		Summary:     summary.String(),
	}
}
