package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("money: cannot parse amount")

// Money is a fixed two-decimal currency amount. Every constructor and every
// arithmetic result is rounded half-up to two places, so repeated additions
// and subtractions never accumulate binary floating-point drift.
type Money struct {
	amount decimal.Decimal
}

func Zero() Money { return Money{amount: decimal.Zero} }

// FromString parses a decimal literal such as "1.99".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errors.Join(ErrInvalidAmount, err)
	}
	return Money{amount: d.Round(2)}, nil
}

// MustFromString is FromString for literals known to be valid, such as seed data.
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func FromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f).Round(2)}
}

func FromInt(n int64) Money {
	return Money{amount: decimal.NewFromInt(n)}
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount).Round(2)}
}

// Sub computes m - o. Producing a negative amount is a caller-checked
// precondition; the result is not clamped.
func (m Money) Sub(o Money) Money {
	return Money{amount: m.amount.Sub(o.amount).Round(2)}
}

// MulInt computes price times quantity, exact to two decimals.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(2)}
}

func (m Money) Cmp(o Money) int { return m.amount.Cmp(o.amount) }

func (m Money) Equal(o Money) bool          { return m.amount.Equal(o.amount) }
func (m Money) GreaterOrEqual(o Money) bool { return m.amount.GreaterThanOrEqual(o.amount) }
func (m Money) LessThan(o Money) bool       { return m.amount.LessThan(o.amount) }
func (m Money) IsPositive() bool            { return m.amount.IsPositive() }
func (m Money) IsNegative() bool            { return m.amount.IsNegative() }
func (m Money) IsZero() bool                { return m.amount.IsZero() }

// String renders the amount with exactly two decimal places.
func (m Money) String() string { return m.amount.StringFixed(2) }
