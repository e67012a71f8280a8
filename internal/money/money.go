package money

import (
	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor units (1/100 of the currency
// unit). All arithmetic in the service happens on this type; floating point
// only appears at the HTTP boundary.
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromFloat converts a decimal amount (e.g. 10.005 from a JSON number) into
// cents, rounding half-up to two places.
func FromFloat(v float64) Cents {
	d := decimal.NewFromFloat(v).Round(2)
	return Cents(d.Mul(hundred).IntPart())
}

// FromString parses a decimal string ("10.50") into cents, rounding half-up
// to two places.
func FromString(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return Cents(d.Round(2).Mul(hundred).IntPart()), nil
}

// Float64 returns the amount in currency units for JSON responses.
func (c Cents) Float64() float64 {
	f, _ := decimal.New(int64(c), -2).Float64()
	return f
}

// String formats the amount with exactly two decimal places ("20.00").
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// MulQuantity returns the extended price quantity × unit.
func (c Cents) MulQuantity(quantity int) Cents {
	return c * Cents(quantity)
}
