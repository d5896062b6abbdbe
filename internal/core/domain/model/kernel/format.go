package kernel

import "github.com/shopspring/decimal"

// SummaryTimeLayout is the timestamp layout used in customer-facing
// summaries, e.g. "3/15/2024 10:30 AM".
const SummaryTimeLayout = "1/2/2006 3:04 PM"

// FormatMoney renders an amount for customer-facing summaries with a
// currency sign and two decimal places. The underlying decimal stays
// unrounded; this is presentation only.
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
