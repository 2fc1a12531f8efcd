package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders a money amount with exactly two decimal places.
// Example: 12.3456 returns "12.35", 40000 returns "40000.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatPercent renders a percentage rounded to two places without trailing
// zeros. Example: 60 returns "60", 33.3333 returns "33.33".
func FormatPercent(pct decimal.Decimal) string {
	return pct.Round(2).String()
}
