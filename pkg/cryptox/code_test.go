package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode_SixDigits(t *testing.T) {
	for range 2000 {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.NotEqual(t, byte('0'), code[0])

		v, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 100000)
		require.LessOrEqual(t, v, 999999)
	}
}

func TestGenerateNumericCode_Lengths(t *testing.T) {
	for n := 1; n <= MaxCodeDigits; n++ {
		code, err := GenerateNumericCode(n)
		require.NoError(t, err)
		require.True(t, IsNumericCode(code, n), "n=%d code=%s", n, code)
	}
}

func TestGenerateNumericCode_OutOfRange(t *testing.T) {
	_, err := GenerateNumericCode(0)
	require.Error(t, err)
	_, err = GenerateNumericCode(MaxCodeDigits + 1)
	require.Error(t, err)
}

func TestGenerateNumericCode_Spread(t *testing.T) {
	seen := make(map[string]struct{})
	for range 500 {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 500 draws over 900000 values should almost never collide more than a few times.
	require.Greater(t, len(seen), 490)
}

func TestIsNumericCode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123456", true},
		{"012345", true},
		{"12345", false},
		{"1234567", false},
		{"12a456", false},
		{" 23456", false},
		{"１23456", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IsNumericCode(tt.in, 6), tt.in)
	}
}
