package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/grocerysim/grocery-shop/internal/application/purchase"
	"github.com/grocerysim/grocery-shop/internal/domain/catalog"
	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
	domain "github.com/grocerysim/grocery-shop/internal/domain/purchase"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/auditlog"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	records []*domain.Record
}

func (w *recordingWriter) Append(_ context.Context, rec *domain.Record) error {
	w.records = append(w.records, rec)
	return nil
}

func newTestShell(t *testing.T, script string) (*Shell, *bytes.Buffer, *recordingWriter, *memory.ProductRegistry, *memory.CustomerRegistry) {
	t.Helper()
	ctx := context.Background()

	products := memory.NewProductRegistry()
	apples, err := catalog.New(1, "Яблоки", money.MustFromString("2.00"), 20)
	require.NoError(t, err)
	products.Add(ctx, apples)

	customers := memory.NewCustomerRegistry()
	anna, err := customer.New(1, "Анна", money.MustFromString("1000.00"))
	require.NoError(t, err)
	customers.Add(ctx, anna)

	audit := &recordingWriter{}
	engine := purchase.NewEngine(products, customers, []auditlog.Writer{audit}, nil)

	var out bytes.Buffer
	sh := New(products, customers, engine, strings.NewReader(script), &out, nil)
	return sh, &out, audit, products, customers
}

func TestRunExitOption(t *testing.T) {
	sh, out, _, _, _ := newTestShell(t, "9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Добро пожаловать в интернет-магазин продуктов питания!")
	assert.Contains(t, out.String(), "Выход из программы.")
}

func TestRunEOFExitsCleanly(t *testing.T) {
	sh, out, _, _, _ := newTestShell(t, "")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Выход из программы.")
}

func TestRunUnknownChoice(t *testing.T) {
	sh, out, _, _, _ := newTestShell(t, "42\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Неверный выбор. Попробуйте снова.")
}

func TestPurchaseFlow(t *testing.T) {
	// Option 8, customer 1, product 1, quantity 5, stop shopping, exit.
	sh, out, audit, products, customers := newTestShell(t, "8\n1\n1\n5\nнет\n9\n")

	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Покупка успешно совершена. Остаток товара: 15")
	assert.Contains(t, text, "Баланс покупателя: Анна=990.00")
	assert.Contains(t, text, "Информация о покупке сохранена в файл.")

	require.Len(t, audit.records, 1)
	assert.Equal(t, 5, audit.records[0].Quantity)

	ctx := context.Background()
	p, err := products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Quantity)
	c, err := customers.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "990.00", c.Balance.String())
}

func TestPurchaseInsufficientStockMessage(t *testing.T) {
	// Quantity 1000 against a stock of 20.
	sh, out, audit, _, customers := newTestShell(t, "8\n1\n1\n1000\nнет\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Недостаточное количество товара.")
	assert.Empty(t, audit.records)

	c, err := customers.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", c.Balance.String())
}

func TestPurchaseInsufficientBalanceMessage(t *testing.T) {
	// Add a customer with 5.00, then buy 5 x 2.00 on their account.
	sh, out, audit, _, customers := newTestShell(t, "5\nПетр\n5.00\n8\n2\n1\n5\nнет\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Недостаточно средств у покупателя.")
	assert.Empty(t, audit.records)

	c, err := customers.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "5.00", c.Balance.String())
}

func TestPurchaseContinueLoop(t *testing.T) {
	// Two purchases in one session separated by "да".
	sh, out, audit, products, _ := newTestShell(t, "8\n1\n1\n5\nда\n1\n1\n5\nнет\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Остаток товара: 10")
	require.Len(t, audit.records, 2)

	p, err := products.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)
}

func TestAddProductFlow(t *testing.T) {
	// Option 1: name, price, quantity. New product gets id 2.
	sh, out, _, products, _ := newTestShell(t, "1\nГруши\n3.50\n12\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Продукт добавлен успешно.")

	p, err := products.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Груши", p.Name)
	assert.Equal(t, "3.50", p.Price.String())
	assert.Equal(t, 12, p.Quantity)
}

func TestDeleteProductMissingID(t *testing.T) {
	sh, out, _, products, _ := newTestShell(t, "3\n42\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Ошибка: продукт с таким ID не найден.")
	assert.Len(t, products.List(context.Background()), 1)
}

func TestDeleteProductFlow(t *testing.T) {
	sh, out, _, products, _ := newTestShell(t, "3\n1\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Продукт удален.")
	assert.Empty(t, products.List(context.Background()))

	_, err := products.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestAddAndDeleteCustomerFlow(t *testing.T) {
	sh, out, _, _, customers := newTestShell(t, "5\nМария\n300.00\n6\n1\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, "Покупатель добавлен.")
	assert.Contains(t, text, "Покупатель удален.")

	ctx := context.Background()
	list := customers.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Мария", list[0].Name)
	assert.Equal(t, 2, list[0].ID)
}

func TestUpdateProductFlow(t *testing.T) {
	sh, out, _, products, _ := newTestShell(t, "2\n1\nБатон\n1.19\n8\n9\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Продукт обновлен.")

	p, err := products.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Батон", p.Name)
	assert.Equal(t, "1.19", p.Price.String())
	assert.Equal(t, 8, p.Quantity)
}
