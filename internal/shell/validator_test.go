package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grocerysim/grocery-shop/internal/domain/catalog"
	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(lines ...string) (*Validator, *bytes.Buffer) {
	var out bytes.Buffer
	v := NewValidator(strings.NewReader(strings.Join(lines, "\n")), &out)
	return v, &out
}

func TestPromptTextRetriesUntilValid(t *testing.T) {
	v, out := scripted("", "123", "Яблоки")

	got, err := v.PromptText("имя: ")
	require.NoError(t, err)
	assert.Equal(t, "Яблоки", got)
	assert.Contains(t, out.String(), "Ошибка: ввод не может быть пустым.")
	assert.Contains(t, out.String(), "Ошибка! Ввод не должен быть числом.")
}

func TestPromptTextEOF(t *testing.T) {
	v, _ := scripted()

	_, err := v.PromptText("имя: ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPromptIntRetriesOnGarbage(t *testing.T) {
	v, out := scripted("abc", "3.5", "7")

	got, err := v.PromptInt("число: ")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Contains(t, out.String(), "Ошибка! Введите корректное целое число.")
}

func TestPromptPositiveIntRejectsZeroAndNegative(t *testing.T) {
	v, out := scripted("0", "-2", "4")

	got, err := v.PromptPositiveInt("количество: ")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Contains(t, out.String(), "количество не может быть отрицательным или нулевым")
}

func TestPromptPriceRejectsNonPositive(t *testing.T) {
	v, out := scripted("нет", "0", "-1.50", "2.99")

	got, err := v.PromptPrice("цена: ")
	require.NoError(t, err)
	assert.Equal(t, "2.99", got.String())
	assert.Contains(t, out.String(), "Ошибка! Введите число.")
	assert.Contains(t, out.String(), "цена не может быть отрицательной или нулевой")
}

func TestPromptUniqueProductNameCaseInsensitive(t *testing.T) {
	apples, err := catalog.New(1, "Яблоки", money.MustFromString("1.99"), 50)
	require.NoError(t, err)

	v, out := scripted("яблоки", "Груши")

	got, promptErr := v.PromptUniqueProductName("название: ", []*catalog.Product{apples})
	require.NoError(t, promptErr)
	assert.Equal(t, "Груши", got)
	assert.Contains(t, out.String(), "Продукт с таким названием уже существует")
	assert.Contains(t, out.String(), "Название уникально, продолжаем добавление.")
}

func TestPromptExistingProductID(t *testing.T) {
	apples, err := catalog.New(1, "Яблоки", money.MustFromString("1.99"), 50)
	require.NoError(t, err)

	v, out := scripted("5", "1")

	got, promptErr := v.PromptExistingProductID("ID: ", []*catalog.Product{apples})
	require.NoError(t, promptErr)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Продукт с таким ID не существует")
}

func TestPromptExistingCustomerID(t *testing.T) {
	anna, err := customer.New(1, "Анна", money.MustFromString("1000.00"))
	require.NoError(t, err)

	v, out := scripted("9", "1")

	got, promptErr := v.PromptExistingCustomerID("ID: ", []*customer.Customer{anna})
	require.NoError(t, promptErr)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Покупатель с таким ID не существует")
}
