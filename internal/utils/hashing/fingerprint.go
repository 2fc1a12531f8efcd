package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFingerprint hashes the normalized (date, amount, description)
// tuple used to spot re-imported transactions.
func TransactionFingerprint(date, amount, description string) string {
	normalized := strings.TrimSpace(date) + "|" + strings.TrimSpace(amount) + "|" + strings.ToLower(strings.TrimSpace(description))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Fingerprint is TransactionFingerprint over typed values: the date as
// YYYY-MM-DD and the amount with two fixed decimal places.
func Fingerprint(date time.Time, amount decimal.Decimal, description string) string {
	return TransactionFingerprint(domain.FormatDate(date), amount.StringFixed(domain.AmountPlaces), description)
}
