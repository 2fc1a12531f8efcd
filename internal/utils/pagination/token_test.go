package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOffsetToken(t *testing.T) {
	for _, offset := range []int{0, 1, 100, 12345} {
		token := EncodeOffsetToken(offset)
		assert.NotEmpty(t, token, "Token should not be empty")

		decoded, err := DecodeOffsetToken(token)
		require.NoError(t, err)
		assert.Equal(t, offset, decoded)
	}
}

func TestDecodeOffsetToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"wrong field", EncodeMultiFieldToken("cursor", "10")},
		{"negative", EncodeMultiFieldToken("offset", "-1")},
		{"not a number", EncodeMultiFieldToken("offset", "ten")},
		{"too many fields", EncodeMultiFieldToken("offset", "1", "2")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOffsetToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNextOffsetToken(t *testing.T) {
	assert.Nil(t, NextOffsetToken(100, 0, 42), "short page has no next token")
	assert.Nil(t, NextOffsetToken(0, 0, 0))

	next := NextOffsetToken(100, 200, 100)
	require.NotNil(t, next)
	offset, err := DecodeOffsetToken(*next)
	require.NoError(t, err)
	assert.Equal(t, 300, offset)
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}
