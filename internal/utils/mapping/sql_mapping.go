package mapping

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToCents converts an amount already validated to whole cents into minor units.
// Amounts whose minor units do not fit in an int64 are rejected, never wrapped.
func ToCents(d decimal.Decimal) (int64, error) {
	cents := d.Round(domain.AmountPlaces).Shift(domain.AmountPlaces).BigInt()
	if !cents.IsInt64() {
		return 0, fmt.Errorf("%w: amount %s is out of range", apperrors.ErrValidation, d.String())
	}
	return cents.Int64(), nil
}


// FromCents converts minor units back into a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -domain.AmountPlaces)
}

// ToNullCents maps an optional amount to a nullable integer column.
func ToNullCents(d *decimal.Decimal) (sql.NullInt64, error) {
	if d == nil {
		return sql.NullInt64{}, nil
	}
	cents, err := ToCents(*d)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: cents, Valid: true}, nil
}

// FromNullCents maps a nullable integer column to an optional amount.
func FromNullCents(n sql.NullInt64) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := FromCents(n.Int64)
	return &d
}

// ToNullInt64 maps an optional id to a nullable column.
func ToNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// FromNullInt64 maps a nullable column to an optional id.
func FromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// ToNullString maps an optional string to a nullable column.
func ToNullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

// FromNullString maps a nullable column to an optional string.
func FromNullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

// ToDateString renders a date column value as YYYY-MM-DD.
func ToDateString(t time.Time) string {
	return domain.FormatDate(t)
}

// ToNullDateString maps an optional date to a nullable YYYY-MM-DD column.
func ToNullDateString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: domain.FormatDate(*t), Valid: true}
}

// FromDateString parses a YYYY-MM-DD column value.
func FromDateString(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}

// FromNullDateString parses a nullable YYYY-MM-DD column value.
func FromNullDateString(n sql.NullString) (*time.Time, error) {
	if !n.Valid {
		return nil, nil
	}
	t, err := FromDateString(n.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FromTimestampString parses a CURRENT_TIMESTAMP column value, tolerating
// the RFC 3339 form as well.
func FromTimestampString(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, domain.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
