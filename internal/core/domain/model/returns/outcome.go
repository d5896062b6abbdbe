package returns

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Outcome is the caller-facing result of the return pipeline.
type Outcome struct {
	Success       bool
	OrderNumber   string
	ReturnNumber  string
	RefundAmount  decimal.Decimal
	ShippingFee   decimal.Decimal
	ReasonType    ReasonType
	ProcessedDate time.Time
	Summary       string
	Reasons       []string
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
	case Approved:
		return failedOutcome("Unexpected return approved state")
	case Invalid:
		return Outcome{OrderNumber: s.OrderNumber, Reasons: s.Reasons}
	case Processed:
		return successOutcome(s)
	default:
		return failedOutcome("Unexpected state")
	}
}

func failedOutcome(reason string) Outcome {
	return Outcome{Reasons: []string{reason}}
}

func successOutcome(processed Processed) Outcome {
	var summary strings.Builder
	summary.WriteString("Return request has been successfully processed.\n")
	summary.WriteString("\n")
	fmt.Fprintf(&summary, "Order Number: %s\n", processed.OrderNumber)
	fmt.Fprintf(&summary, "Return Number: %s\n", processed.ReturnNumber)
	summary.WriteString("\n")
	summary.WriteString("Return Details:\n")
	fmt.Fprintf(&summary, "  Return Reason: %s\n", processed.Reason)
	fmt.Fprintf(&summary, "  Reason Category: %s\n", processed.Reason.Type().Description())
	summary.WriteString("\n")
	summary.WriteString("Returned Items:\n")
	for _, item := range processed.Items {
		fmt.Fprintf(&summary, "  - Product: %s, Quantity: %s\n", item.ProductCode, item.Quantity)
	}
	summary.WriteString("\n")
	if processed.ShippingFee.IsPositive() {
		fmt.Fprintf(&summary, "Shipping Fee: %s\n", kernel.FormatMoney(processed.ShippingFee))
	} else {
		summary.WriteString("Shipping Fee: None (company responsibility)\n")
	}
	fmt.Fprintf(&summary, "Refund Amount: %s\n", kernel.FormatMoney(processed.RefundAmount))
	summary.WriteString("\n")
	summary.WriteString("The refund will be processed within 5-7 business days.\n")
	summary.WriteString("You will receive return instructions via email.\n")

	return Outcome{
		Success:       true,
		OrderNumber:   processed.OrderNumber.Value(),
		ReturnNumber:  processed.ReturnNumber,
		RefundAmount:  processed.RefundAmount,
		ShippingFee:   processed.ShippingFee,
		ReasonType:    processed.Reason.Type(),
		ProcessedDate: processed.ProcessedAt,
		Summary:       summary.String(),
	}
}
