package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
)

// Line is a snapshot of one purchased product at transaction time.
type Line struct {
	Name  string
	Price money.Money
}

// Record is the transient result of a completed purchase. It is never stored;
// its only consumer is the audit log. Products is a singleton sequence today,
// kept as a slice so multi-item carts stay representable.
type Record struct {
	ID           string
	CustomerID   int
	CustomerName string
	Products     []Line
	Quantity     int
	TotalAmount  money.Money
	OccurredAt   time.Time
}

// NewRecord captures the transaction timestamp at construction.
func NewRecord(customerID int, customerName string, products []Line, quantity int, total money.Money) *Record {
	return &Record{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		CustomerName: customerName,
		Products:     products,
		Quantity:     quantity,
		TotalAmount:  total,
		OccurredAt:   time.Now().UTC(),
	}
}
