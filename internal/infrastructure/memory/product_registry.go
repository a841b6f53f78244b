package memory

import (
	"context"
	"sync"

	domain "github.com/grocerysim/grocery-shop/internal/domain/catalog"
)

// ProductRegistry owns the ordered product list. List returns the live
// entries, not defensive copies: the purchase engine deducts stock in place
// through the pointers handed out here.
type ProductRegistry struct {
	mu       sync.RWMutex
	products []*domain.Product
}

func NewProductRegistry() *ProductRegistry {
	return &ProductRegistry{}
}

// Add appends the product. Name uniqueness is enforced by the caller's
// validation layer; the registry trusts its input.
func (r *ProductRegistry) Add(ctx context.Context, p *domain.Product) {
	_ = ctx
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, p)
}

// Update replaces the first entry whose id matches. A miss is a silent no-op.
func (r *ProductRegistry) Update(ctx context.Context, id int, updated *domain.Product) {
	_ = ctx
	if updated == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products[i] = updated
			return
		}
	}
}

// Delete removes every entry matching the id. Normally at most one matches,
// but id collisions after deletion make the sweep defensive.
func (r *ProductRegistry) Delete(ctx context.Context, id int) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(r.products); i++ {
		r.products[i] = nil
	}
	r.products = kept
}

// List returns the products in insertion order.
func (r *ProductRegistry) List(ctx context.Context) []*domain.Product {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.products
}

func (r *ProductRegistry) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// NextID assigns ids as count+1, matching the historical behavior. After a
// deletion this can hand out an id that is already in use; see DESIGN.md.
func (r *ProductRegistry) NextID(ctx context.Context) int {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products) + 1
}
