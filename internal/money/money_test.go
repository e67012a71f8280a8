package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	assert.Equal(t, Cents(1000), FromFloat(10.0))
	assert.Equal(t, Cents(1050), FromFloat(10.50))
	assert.Equal(t, Cents(0), FromFloat(0))
	// half-up rounding at the third decimal
	assert.Equal(t, Cents(1001), FromFloat(10.005))
	assert.Equal(t, Cents(1000), FromFloat(10.004))
	// classic float trap: 0.1+0.2 style inputs stay exact in cents
	assert.Equal(t, Cents(30), FromFloat(0.1+0.2))
}

func TestFromString(t *testing.T) {
	c, err := FromString("20.00")
	require.NoError(t, err)
	assert.Equal(t, Cents(2000), c)

	c, err = FromString("0.99")
	require.NoError(t, err)
	assert.Equal(t, Cents(99), c)

	_, err = FromString("abc")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "20.00", Cents(2000).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "1234.56", Cents(123456).String())
	assert.InDelta(t, 20.0, Cents(2000).Float64(), 1e-9)
}

func TestMulQuantity(t *testing.T) {
	assert.Equal(t, Cents(2000), Cents(1000).MulQuantity(2))
	assert.Equal(t, Cents(0), Cents(1000).MulQuantity(0))
	// idempotent: same inputs, same result on repeated calls
	first := Cents(333).MulQuantity(3)
	second := Cents(333).MulQuantity(3)
	assert.Equal(t, first, second)
}
