package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(t *testing.T, s string) Amount {
	t.Helper()
	a, err := AmountFromString(s)
	require.NoError(t, err)
	return a
}

func TestAmountFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"integer", "100", false},
		{"four decimals", "1.2345", false},
		{"negative", "-3.5", false},
		{"empty", "", true},
		{"garbage", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AmountFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestAmount_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3; binary floats would drift.
	sum, ok := amt(t, "0.1").CheckedAdd(amt(t, "0.2"))
	require.True(t, ok)
	assert.True(t, sum.Equal(amt(t, "0.3")))
	assert.Equal(t, "0.3", sum.String())
}

func TestAmount_CheckedAdd_Overflow(t *testing.T) {
	max := MaxAmount()

	_, ok := max.CheckedAdd(max)
	assert.False(t, ok)

	_, ok = max.CheckedAdd(amt(t, "0.0001"))
	assert.False(t, ok)

	same, ok := max.CheckedAdd(Amount{})
	require.True(t, ok)
	assert.True(t, same.Equal(max))
}

func TestAmount_CheckedSub_Underflow(t *testing.T) {
	_, ok := amt(t, "1").CheckedSub(amt(t, "1.0001"))
	assert.False(t, ok, "result below zero leaves the representable range")

	zero, ok := amt(t, "1").CheckedSub(amt(t, "1"))
	require.True(t, ok)
	assert.True(t, zero.IsZero())
}

func TestAmount_Comparisons(t *testing.T) {
	a := amt(t, "5.5")
	b := amt(t, "10")

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, a.Equal(amt(t, "5.50")))
	assert.True(t, amt(t, "-1").IsNegative())
	assert.False(t, a.IsNegative())
}

func TestAmount_StringFixed(t *testing.T) {
	assert.Equal(t, "1.5000", amt(t, "1.5").StringFixed(4))
	assert.Equal(t, "0.0000", Amount{}.StringFixed(4))
	assert.Equal(t, "2.0000", NewAmount(decimal.NewFromInt(2)).StringFixed(4))
}
