package memory

import (
	"context"
	"testing"

	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, id int, name, balance string) *customer.Customer {
	t.Helper()
	c, err := customer.New(id, name, money.MustFromString(balance))
	require.NoError(t, err)
	return c
}

func TestCustomerRegistryAddListFind(t *testing.T) {
	ctx := context.Background()
	r := NewCustomerRegistry()

	r.Add(ctx, newCustomer(t, 1, "Анна", "1000.00"))
	r.Add(ctx, newCustomer(t, 2, "Иван", "500.00"))

	list := r.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "Анна", list[0].Name)
	assert.Equal(t, "Иван", list[1].Name)

	got, err := r.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "500.00", got.Balance.String())

	_, err = r.FindByID(ctx, 7)
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestCustomerRegistryDelete(t *testing.T) {
	ctx := context.Background()
	r := NewCustomerRegistry()
	r.Add(ctx, newCustomer(t, 1, "Анна", "1000.00"))
	r.Add(ctx, newCustomer(t, 2, "Иван", "500.00"))

	r.Delete(ctx, 1)

	list := r.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Иван", list[0].Name)

	// Deleting an unknown id changes nothing.
	r.Delete(ctx, 99)
	assert.Len(t, r.List(ctx), 1)
}

func TestCustomerRegistryListIsLive(t *testing.T) {
	ctx := context.Background()
	r := NewCustomerRegistry()
	r.Add(ctx, newCustomer(t, 1, "Ольга", "750.00"))

	list := r.List(ctx)
	require.NoError(t, list[0].Deduct(money.MustFromString("50.00")))

	got, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "700.00", got.Balance.String())
}

func TestCustomerRegistryNextID(t *testing.T) {
	ctx := context.Background()
	r := NewCustomerRegistry()

	assert.Equal(t, 1, r.NextID(ctx))
	r.Add(ctx, newCustomer(t, 1, "Анна", "1000.00"))
	assert.Equal(t, 2, r.NextID(ctx))
}
