package modification

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Outcome is the caller-facing result of the modification pipeline.
type Outcome struct {
	Success         bool
	OrderNumber     string
	NewTotalPrice   decimal.Decimal
	PriceDifference decimal.Decimal
	ModifiedDate    time.Time
	Summary         string
	Reasons         []string
}

// ToOutcome projects a final pipeline state into an Outcome. Every variant
// is mapped; a non-terminal variant reaching projection indicates a
// pipeline defect and becomes a failure.
func ToOutcome(state State) Outcome {
	switch s := state.(type) {
	case Unvalidated:
		return failedOutcome("Unexpected unvalidated state")
	case Validated:
		return failedOutcome("Unexpected validated state")
	case OrderVerified:
		return failedOutcome("Unexpected order verified state")
	case ProductsVerified:
		return failedOutcome("Unexpected products verified state")
	case PriceRecalculated:
		return failedOutcome("Unexpected price recalculated state")
	case Invalid:
		return Outcome{OrderNumber: s.OrderNumber, Reasons: s.Reasons}
	case Modified:
		return successOutcome(s)
	default:
		return failedOutcome("Unexpected state")
	}
}

func failedOutcome(reason string) Outcome {
	return Outcome{Reasons: []string{reason}}
}

func successOutcome(modified Modified) Outcome {
	var summary strings.Builder
	fmt.Fprintf(&summary, "Order %s has been successfully modified.\n", modified.OrderNumber)
	summary.WriteString("\n")
	summary.WriteString("Modified Order Items:\n")
	for _, line := range modified.NewLines {
		fmt.Fprintf(&summary, "  - %s (%s) x %s @ %s = %s\n",
			line.ProductName, line.ProductCode, line.Quantity,
			kernel.FormatMoney(line.Price), kernel.FormatMoney(line.LineTotal))
	}
	summary.WriteString("\n")
	fmt.Fprintf(&summary, "New Order Total: %s\n", kernel.FormatMoney(modified.NewTotalPrice))

	switch {
	case modified.PriceDifference.IsPositive():
		fmt.Fprintf(&summary, "Additional Charge: %s\n", kernel.FormatMoney(modified.PriceDifference))
		summary.WriteString("The additional amount will be charged to your payment method.\n")
	case modified.PriceDifference.IsNegative():
		fmt.Fprintf(&summary, "Refund Amount: %s\n", kernel.FormatMoney(modified.PriceDifference.Abs()))
		summary.WriteString("The refund will be processed within 3-5 business days.\n")
	default:
		summary.WriteString("Price Difference: None (same total as original order)\n")
	}

	summary.WriteString("\n")
	fmt.Fprintf(&summary, "Modified on: %s\n", modified.ModifiedAt.Format(kernel.SummaryTimeLayout))

	return Outcome{
		Success:         true,
		OrderNumber:     modified.OrderNumber.Value(),
		NewTotalPrice:   modified.NewTotalPrice,
		PriceDifference: modified.PriceDifference,
		ModifiedDate:    modified.ModifiedAt,
		Summary:         summary.String(),
	}
}
