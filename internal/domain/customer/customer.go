package customer

import (
	"errors"

	"github.com/grocerysim/grocery-shop/internal/domain/money"
)

var (
	ErrNotFound            = errors.New("customer: not found")
	ErrInvalidName         = errors.New("customer: name must not be empty")
	ErrInvalidBalance      = errors.New("customer: balance must be zero or greater")
	ErrInvalidAmount       = errors.New("customer: amount must be zero or greater")
	ErrInsufficientBalance = errors.New("customer: insufficient balance")
)

type Customer struct {
	ID      int
	Name    string
	Balance money.Money
}

func New(id int, name string, balance money.Money) (*Customer, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if balance.IsNegative() {
		return nil, ErrInvalidBalance
	}
	return &Customer{
		ID:      id,
		Name:    name,
		Balance: balance,
	}, nil
}

// CanAfford reports whether the balance covers the amount.
func (c *Customer) CanAfford(amount money.Money) bool {
	return c.Balance.GreaterOrEqual(amount)
}

// Deduct draws the amount from the balance. A draw below zero is rejected
// before any mutation.
func (c *Customer) Deduct(amount money.Money) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if c.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}
