package catalog

import (
	"errors"

	"github.com/grocerysim/grocery-shop/internal/domain/money"
)

var (
	ErrNotFound          = errors.New("catalog: product not found")
	ErrInvalidName       = errors.New("catalog: name must not be empty")
	ErrInvalidPrice      = errors.New("catalog: price must be greater than zero")
	ErrInvalidQuantity   = errors.New("catalog: quantity must be zero or greater")
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

type Product struct {
	ID       int
	Name     string
	Price    money.Money
	Quantity int
}

func New(id int, name string, price money.Money, quantity int) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// Available reports whether the requested quantity is in stock.
func (p *Product) Available(requested int) bool {
	return p.Quantity >= requested
}

// Reduce deducts the purchased quantity. The caller must have checked
// Available first; an overdraw leaves the stock untouched.
func (p *Product) Reduce(amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	if amount > p.Quantity {
		return ErrInsufficientStock
	}
	p.Quantity -= amount
	return nil
}
