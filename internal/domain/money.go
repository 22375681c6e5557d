package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits the way the storefront shows prices (₦1,599).
var printer = message.NewPrinter(language.English)

// FormatPrice renders an integer list price with the currency sign.
func FormatPrice(n int) string {
	return printer.Sprintf("₦%d", n)
}

// FormatAmount renders a computed amount (totals, effective prices).
// Whole amounts drop the decimals; fractional ones keep two places.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("₦%d", int64(v))
	}
	return printer.Sprintf("₦%.2f", v)
}
