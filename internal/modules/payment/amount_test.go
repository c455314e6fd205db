package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"99", 9900},
		{"19.99", 1999},
		{"0.1", 10},
		{"10.005", 1001},
		{"10.004", 1000},
		{"0", 0},
		{"1234567.89", 123456789},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(decimal.RequireFromString(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestToMinorUnits_Negative(t *testing.T) {
	_, err := ToMinorUnits(decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestToMinorUnits_TooLarge(t *testing.T) {
	for _, in := range []string{
		"92233720368547758.08",
		"184467440737095516.17",
		"1e30",
	} {
		got, err := ToMinorUnits(decimal.RequireFromString(in))
		assert.ErrorIs(t, err, ErrAmountTooLarge, in)
		assert.Zero(t, got, in)
	}

	got, err := ToMinorUnits(decimal.RequireFromString("92233720368547758.07"))
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), got)
}
