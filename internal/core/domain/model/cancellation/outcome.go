package cancellation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Outcome is the caller-facing result of the cancellation pipeline.
type Outcome struct {
	Success       bool
	OrderNumber   string
	RefundAmount  decimal.Decimal
	CancelledDate time.Time
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
	case RefundCalculated:
		return failedOutcome("Unexpected refund calculated state")
	case Invalid:
		return Outcome{OrderNumber: s.OrderNumber, Reasons: s.Reasons}
	case Cancelled:
		return successOutcome(s)
	default:
		return failedOutcome("Unexpected state")
	}
}

func failedOutcome(reason string) Outcome {
	return Outcome{Reasons: []string{reason}}
}

func successOutcome(cancelled Cancelled) Outcome {
	total := cancelled.OrderDetails.TotalAmount()
	refundPercentage := decimal.Zero
	if total.IsPositive() {
		refundPercentage = cancelled.RefundAmount.Div(total).Mul(decimal.NewFromInt(100))
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "Order %s has been successfully cancelled.\n", cancelled.OrderNumber)
	summary.WriteString("Cancellation Details:\n")
	fmt.Fprintf(&summary, "- Order Number: %s\n", cancelled.OrderNumber)
	fmt.Fprintf(&summary, "- Original Order Total: %s\n", kernel.FormatMoney(total))
	fmt.Fprintf(&summary, "- Refund Amount: %s (%s%% of total)\n",
		kernel.FormatMoney(cancelled.RefundAmount), refundPercentage.StringFixed(0))
	fmt.Fprintf(&summary, "- Cancellation Reason: %s\n", cancelled.Reason)
	fmt.Fprintf(&summary, "- Cancelled Date: %s\n", cancelled.CancelledAt.Format(kernel.SummaryTimeLayout))
	summary.WriteString("The refund will be processed within 3-5 business days.")

	return Outcome{
		Success:       true,
		OrderNumber:   cancelled.OrderNumber.Value(),
		RefundAmount:  cancelled.RefundAmount,
		CancelledDate: cancelled.CancelledAt,
		Summary:       summary.String(),
	}
}
