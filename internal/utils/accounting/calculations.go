package accounting

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// OwnershipPercentages returns each capital balance as a percentage of their
// total. When the total is zero or negative every owner gets an equal 100/N.
// Negative individual balances are not clamped.
func OwnershipPercentages(capitals []decimal.Decimal) []decimal.Decimal {
	pcts := make([]decimal.Decimal, len(capitals))
	if len(capitals) == 0 {
		return pcts
	}
	total := decimal.Sum(decimal.Zero, capitals...)
	if !total.IsPositive() {
		equal := EqualSplit(len(capitals))
		for i := range pcts {
			pcts[i] = equal
		}
		return pcts
	}
	for i, c := range capitals {
		pcts[i] = c.Mul(hundred).Div(total)
	}
	return pcts
}

// EqualSplit is 100/n, or zero for no owners.
func EqualSplit(n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return hundred.Div(decimal.NewFromInt(int64(n)))
}

// EquityShare is netEquity scaled by pct percent.
func EquityShare(netEquity, pct decimal.Decimal) decimal.Decimal {
	return netEquity.Mul(pct).Div(hundred)
}

// AllocateShare is amount scaled by pct percent, rounded to cents so it can be
// posted.
func AllocateShare(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(2)
}

// MortgageBalance sums the magnitude of each distinct liability balance.
// Callers pass one balance per liability account, already deduplicated.
func MortgageBalance(liabilityBalances map[int64]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range liabilityBalances {
		total = total.Add(b.Abs())
	}
	return total
}
