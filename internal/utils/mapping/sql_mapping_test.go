package mapping

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsRoundTrip(t *testing.T) {
	tests := []struct {
		amount string
		cents  int64
	}{
		{"0", 0},
		{"45.5", 4550},
		{"-255912", -25591200},
		{"0.01", 1},
		{"-0.99", -99},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d := decimal.RequireFromString(tt.amount)
			cents, err := ToCents(d)
			require.NoError(t, err)
			assert.Equal(t, tt.cents, cents)
			assert.True(t, FromCents(tt.cents).Equal(d))
		})
	}
}

func TestToCents_OutOfRange(t *testing.T) {
	for _, s := range []string{"100000000000000000", "-100000000000000000", "92233720368547758.08"} {
		t.Run(s, func(t *testing.T) {
			_, err := ToCents(decimal.RequireFromString(s))
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	cents, err := ToCents(decimal.RequireFromString("92233720368547758.07"))
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), cents)

	huge := decimal.RequireFromString("1e18")
	_, err = ToNullCents(&huge)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNullableMappings(t *testing.T) {
	assert.Nil(t, FromNullInt64(ToNullInt64(nil)))
	id := int64(7)
	assert.Equal(t, &id, FromNullInt64(ToNullInt64(&id)))

	assert.Nil(t, FromNullString(sql.NullString{}))
	s := "ref"
	assert.Equal(t, &s, FromNullString(ToNullString(&s)))

	none, err := ToNullCents(nil)
	require.NoError(t, err)
	assert.Nil(t, FromNullCents(none))
	price := decimal.RequireFromString("550000")
	priceCents, err := ToNullCents(&price)
	require.NoError(t, err)
	got := FromNullCents(priceCents)
	require.NotNil(t, got)
	assert.True(t, got.Equal(price))
}

func TestDateMappings(t *testing.T) {
	d := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	parsed, err := FromDateString(ToDateString(d))
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	none, err := FromNullDateString(ToNullDateString(nil))
	require.NoError(t, err)
	assert.Nil(t, none)

	assert.Equal(t, time.Date(2024, 5, 1, 10, 11, 12, 0, time.UTC), FromTimestampString("2024-05-01 10:11:12"))
}
