package domain

import (
	"fmt"
	"math"
)

// DefaultCurrency is the only currency the fleet is priced in.
const DefaultCurrency = "TWD"

// Money is an immutable amount in whole currency units. Every operation
// returns a new value; arithmetic across currencies is rejected.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney validates and builds a Money value. An empty currency falls back
// to DefaultCurrency.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// ZeroMoney is the canonical zero value in the default currency.
func ZeroMoney() Money {
	return Money{Amount: 0, Currency: DefaultCurrency}
}

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: currency mismatch %s vs %s", ErrValidation, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Subtract returns the difference of two amounts in the same currency.
// A result below zero violates the non-negative invariant and is rejected.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: currency mismatch %s vs %s", ErrValidation, m.Currency, other.Currency)
	}
	if m.Amount < other.Amount {
		return Money{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Multiply scales the amount by factor, rounding half away from zero.
// Negative factors would produce a negative amount and are rejected.
func (m Money) Multiply(factor float64) (Money, error) {
	if factor < 0 {
		return Money{}, fmt.Errorf("%w: multiplier must not be negative", ErrValidation)
	}
	return Money{Amount: int64(math.Round(float64(m.Amount) * factor)), Currency: m.Currency}, nil
}

// MultiplyDays scales the amount by a whole number of days.
func (m Money) MultiplyDays(days int) (Money, error) {
	if days < 0 {
		return Money{}, fmt.Errorf("%w: days must not be negative", ErrValidation)
	}
	return Money{Amount: m.Amount * int64(days), Currency: m.Currency}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
