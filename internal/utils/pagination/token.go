package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetField = "offset"

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// EncodeOffsetToken wraps a list offset in an opaque token.
func EncodeOffsetToken(offset int) string {
	return EncodeMultiFieldToken(offsetField, strconv.Itoa(offset))
}

// DecodeOffsetToken returns the offset stored by EncodeOffsetToken.
func DecodeOffsetToken(token string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != offsetField {
		return 0, fmt.Errorf("invalid pagination token format (fields)")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	return offset, nil
}

// NextOffsetToken returns the token for the following page, or nil when the
// page came back short and there is nothing more to read.
func NextOffsetToken(limit, offset, returned int) *string {
	if limit <= 0 || returned < limit {
		return nil
	}
	token := EncodeOffsetToken(offset + returned)
	return &token
}
