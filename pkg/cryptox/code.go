package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// MaxCodeDigits bounds GenerateNumericCode so the range fits in an int64.
const MaxCodeDigits = 18

// GenerateNumericCode returns an n-digit decimal string drawn uniformly from
// [10^(n-1), 10^n - 1]. The first digit is never zero, so the string length is
// always exactly n.
func GenerateNumericCode(n int) (string, error) {
	if n < 1 || n > MaxCodeDigits {
		return "", fmt.Errorf("code length must be between 1 and %d, got %d", MaxCodeDigits, n)
	}

	low := pow10(n - 1)
	if n == 1 {
		low = 1
	}
	span := pow10(n) - low

	v, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("failed to generate numeric code: %w", err)
	}
	return fmt.Sprintf("%d", low+v.Int64()), nil
}

// IsNumericCode reports whether s is exactly n ASCII digits.
func IsNumericCode(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}
	return v
}
