package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for every dated record.
const DateLayout = "2006-01-02"

// AmountPlaces is the number of decimal places money is kept at.
const AmountPlaces int32 = 2

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// TruncateDate drops the clock part of t, keeping its calendar day in UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MaxAmount is the exclusive upper bound on the magnitude of a single amount.
var MaxAmount = decimal.New(1, 13)

// WithinAmountLimit reports whether |d| is below MaxAmount.
func WithinAmountLimit(d decimal.Decimal) bool {
	return d.Abs().LessThan(MaxAmount)
}

// HasMinorUnitPrecision reports whether d fits in whole cents.
func HasMinorUnitPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountPlaces))
}

// DateRange bounds a query by entry date. Nil ends are open.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Page is offset pagination for list queries.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPageLimit is used when a caller passes a non-positive limit.
const DefaultPageLimit = 100

// Normalize fills in the default limit and clamps a negative offset.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
