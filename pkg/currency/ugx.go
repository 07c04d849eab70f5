// Package currency formats Ugandan Shilling amounts the way the business
// reports them: en-UG digit grouping, no fractional digits, and compact
// notation for large summary figures.
package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-UG"))

// FormatUGX renders a monetary amount with digit grouping, e.g. "UGX 175,000".
func FormatUGX(amount int64) string {
	return printer.Sprintf("UGX %d", amount)
}

// FormatKg renders a quantity in kilograms with digit grouping, e.g. "5,000".
// Up to one fractional digit is kept for non-whole quantities.
func FormatKg(kg float64) string {
	return printer.Sprint(number.Decimal(kg, number.MaxFractionDigits(1)))
}

// FormatCompactUGX renders a monetary amount in compact notation,
// e.g. 2500000 -> "UGX 2.5M".
func FormatCompactUGX(amount int64) string {
	neg := ""
	if amount < 0 {
		neg = "-"
		amount = -amount
	}

	var value float64
	var suffix string
	switch {
	case amount >= 1_000_000_000:
		value, suffix = float64(amount)/1_000_000_000, "B"
	case amount >= 1_000_000:
		value, suffix = float64(amount)/1_000_000, "M"
	case amount >= 1_000:
		value, suffix = float64(amount)/1_000, "K"
	default:
		return fmt.Sprintf("UGX %s%d", neg, amount)
	}

	s := strings.TrimSuffix(fmt.Sprintf("%.1f", value), ".0")
	return fmt.Sprintf("UGX %s%s%s", neg, s, suffix)
}
