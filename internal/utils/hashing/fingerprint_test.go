package hashing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionFingerprint(t *testing.T) {
	base := TransactionFingerprint("2024-01-15", "-45.50", "Woolworths Sydney")

	assert.Len(t, base, 64)
	assert.Equal(t, base, TransactionFingerprint(" 2024-01-15 ", "-45.50 ", "  WOOLWORTHS sydney "), "normalization ignores case and padding")
	assert.NotEqual(t, base, TransactionFingerprint("2024-01-16", "-45.50", "Woolworths Sydney"))
	assert.NotEqual(t, base, TransactionFingerprint("2024-01-15", "-45.51", "Woolworths Sydney"))
	assert.NotEqual(t, base, TransactionFingerprint("2024-01-15", "-45.50", "Coles Sydney"))
}

func TestFingerprint_TypedValues(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		TransactionFingerprint("2024-01-15", "-45.50", "Woolworths"),
		Fingerprint(date, decimal.RequireFromString("-45.5"), "Woolworths"),
	)
}
