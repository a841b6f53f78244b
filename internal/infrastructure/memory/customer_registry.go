package memory

import (
	"context"
	"sync"

	domain "github.com/grocerysim/grocery-shop/internal/domain/customer"
)

// CustomerRegistry owns the ordered customer list. Customers are only added
// and removed, never edited in place, so no Update is exposed.
type CustomerRegistry struct {
	mu        sync.RWMutex
	customers []*domain.Customer
}

func NewCustomerRegistry() *CustomerRegistry {
	return &CustomerRegistry{}
}

func (r *CustomerRegistry) Add(ctx context.Context, c *domain.Customer) {
	_ = ctx
	if c == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = append(r.customers, c)
}

// Delete removes every entry matching the id.
func (r *CustomerRegistry) Delete(ctx context.Context, id int) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.customers[:0]
	for _, c := range r.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(r.customers); i++ {
		r.customers[i] = nil
	}
	r.customers = kept
}

// List returns the customers in insertion order. The entries are live; the
// purchase engine deducts balances in place.
func (r *CustomerRegistry) List(ctx context.Context) []*domain.Customer {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.customers
}

func (r *CustomerRegistry) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// NextID assigns ids as count+1, matching the historical behavior.
func (r *CustomerRegistry) NextID(ctx context.Context) int {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.customers) + 1
}
