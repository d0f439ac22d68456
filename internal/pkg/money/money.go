package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits a Spanner NUMERIC column can hold.
const Scale = 9

// ErrInvalidAmount is returned when a decimal string cannot be parsed.
var ErrInvalidAmount = errors.New("money: invalid amount")

// Money is an immutable decimal amount backed by big.Rat, the type Spanner
// uses for NUMERIC columns. All operations return new instances.
type Money struct {
	amount *big.Rat
}

// New creates Money from a fraction, e.g. New(1999, 100) is 19.99.
func New(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{amount: big.NewRat(numerator, denominator)}
}

// Parse creates Money from a decimal string such as "19.99".
func Parse(s string) (*Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d), nil
}

// FromFloat converts a client-supplied float (GraphQL Float, JSON number) to
// the decimal it was written as, rounded to NUMERIC scale. 19.99 stays 19.99
// instead of becoming 19.989999999999998436805981327779591083526611328125.
func FromFloat(f float64) *Money {
	return FromDecimal(decimal.NewFromFloat(f))
}

// FromDecimal converts d, rounded to NUMERIC scale.
func FromDecimal(d decimal.Decimal) *Money {
	return &Money{amount: d.Round(Scale).Rat()}
}

// FromRat copies r. A nil rat yields zero.
func FromRat(r *big.Rat) *Money {
	if r == nil {
		return Zero()
	}
	return &Money{amount: new(big.Rat).Set(r)}
}

func Zero() *Money {
	return &Money{amount: new(big.Rat)}
}

func (m *Money) Add(other *Money) *Money {
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

// MultiplyInt returns m * n, used for line totals.
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, new(big.Rat).SetInt64(n))}
}

func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Rat returns a copy of the underlying value, suitable as a NUMERIC mutation value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Decimal returns the amount as a shopspring decimal.
func (m *Money) Decimal() decimal.Decimal {
	return decimal.NewFromBigRat(m.amount, Scale)
}

// Float64 is lossy and meant for presentation (GraphQL Float) only.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two fractional digits.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}

// MarshalJSON encodes the exact amount as a JSON string so cached values round-trip.
func (m *Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal().String())
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, string(b))
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	m.amount = parsed.amount
	return nil
}
