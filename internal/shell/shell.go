// Package shell drives the registries and the purchase engine from a
// blocking menu loop over the operator's console.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grocerysim/grocery-shop/internal/application/purchase"
	"github.com/grocerysim/grocery-shop/internal/domain/catalog"
	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/memory"
	"github.com/grocerysim/grocery-shop/internal/observability"
)

const menu = `
Выберите опцию:
1. Добавить продукт
2. Изменить продукт
3. Удалить продукт
4. Показать все продукты
5. Добавить покупателя
6. Удалить покупателя
7. Показать всех покупателей
8. Покупка продукта
9. Выход
`

type Shell struct {
	products  *memory.ProductRegistry
	customers *memory.CustomerRegistry
	engine    *purchase.Engine

	v   *Validator
	out io.Writer
	log observability.Logger
}

func New(
	products *memory.ProductRegistry,
	customers *memory.CustomerRegistry,
	engine *purchase.Engine,
	in io.Reader,
	out io.Writer,
	log observability.Logger,
) *Shell {
	if log == nil {
		log = observability.NopLogger()
	}
	return &Shell{
		products:  products,
		customers: customers,
		engine:    engine,
		v:         NewValidator(in, out),
		out:       out,
		log:       log.With(observability.F("component", "shell")),
	}
}

// Run blocks on the menu loop until the operator exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Добро пожаловать в интернет-магазин продуктов питания!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)
		choice, err := s.v.PromptInt("")
		if err != nil {
			return s.finish(err)
		}

		var actionErr error
		switch choice {
		case 1:
			actionErr = s.addProduct(ctx)
		case 2:
			actionErr = s.updateProduct(ctx)
		case 3:
			actionErr = s.deleteProduct(ctx)
		case 4:
			s.showAllProducts(ctx)
		case 5:
			actionErr = s.addCustomer(ctx)
		case 6:
			actionErr = s.deleteCustomer(ctx)
		case 7:
			s.showAllCustomers(ctx)
		case 8:
			actionErr = s.makePurchase(ctx)
		case 9:
			fmt.Fprintln(s.out, "Выход из программы.")
			return nil
		default:
			fmt.Fprintln(s.out, "Неверный выбор. Попробуйте снова.")
		}
		if actionErr != nil {
			return s.finish(actionErr)
		}
	}
}

// finish maps a closed input stream to a clean exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, ErrInputClosed) {
		fmt.Fprintln(s.out, "Выход из программы.")
		return nil
	}
	return err
}

func (s *Shell) addProduct(ctx context.Context) error {
	fmt.Fprintln(s.out, "Список продуктов перед добавлением:")
	s.showAllProducts(ctx)

	name, err := s.v.PromptUniqueProductName("Введите название продукта: ", s.products.List(ctx))
	if err != nil {
		return err
	}
	price, err := s.v.PromptPrice("Введите цену продукта: ")
	if err != nil {
		return err
	}
	quantity, err := s.v.PromptPositiveInt("Введите количество продукта: ")
	if err != nil {
		return err
	}

	id := s.products.NextID(ctx)
	p, err := catalog.New(id, name, price, quantity)
	if err != nil {
		fmt.Fprintf(s.out, "Ошибка: %v. Продукт не добавлен.\n", err)
		return nil
	}
	s.products.Add(ctx, p)
	s.log.Info("product_added",
		observability.F("product_id", id),
		observability.F("name", name),
	)

	fmt.Fprintln(s.out, "Продукт добавлен успешно.")
	fmt.Fprintln(s.out, "Список продуктов после добавления:")
	s.showAllProducts(ctx)
	return nil
}

func (s *Shell) updateProduct(ctx context.Context) error {
	fmt.Fprintln(s.out, "Список продуктов перед изменением:")
	s.showAllProducts(ctx)

	id, err := s.v.PromptExistingProductID("Введите ID продукта для обновления: ", s.products.List(ctx))
	if err != nil {
		return err
	}
	name, err := s.v.PromptText("Введите новое название продукта: ")
	if err != nil {
		return err
	}
	price, err := s.v.PromptPrice("Введите новую цену продукта: ")
	if err != nil {
		return err
	}
	quantity, err := s.v.PromptPositiveInt("Введите новое количество продукта: ")
	if err != nil {
		return err
	}

	updated, err := catalog.New(id, name, price, quantity)
	if err != nil {
		fmt.Fprintf(s.out, "Ошибка: %v. Продукт не изменен.\n", err)
		return nil
	}
	s.products.Update(ctx, id, updated)
	s.log.Info("product_updated", observability.F("product_id", id))

	fmt.Fprintln(s.out, "Продукт обновлен.")
	fmt.Fprintln(s.out, "Обновленный список продуктов")
	s.showAllProducts(ctx)
	return nil
}

func (s *Shell) deleteProduct(ctx context.Context) error {
	fmt.Fprintln(s.out, "Список продуктов перед удалением:")
	s.showAllProducts(ctx)

	id, err := s.v.PromptInt("Введите ID продукта для удаления: ")
	if err != nil {
		return err
	}
	if _, findErr := s.products.FindByID(ctx, id); findErr != nil {
		fmt.Fprintln(s.out, "Ошибка: продукт с таким ID не найден.")
		return nil
	}
	s.products.Delete(ctx, id)
	s.log.Info("product_deleted", observability.F("product_id", id))

	fmt.Fprintln(s.out, "Продукт удален.")
	fmt.Fprintln(s.out, "Обновленный список продуктов")
	s.showAllProducts(ctx)
	return nil
}

func (s *Shell) showAllProducts(ctx context.Context) {
	fmt.Fprintln(s.out, "Список продуктов:")
	for _, p := range s.products.List(ctx) {
		fmt.Fprintf(s.out, "- ID: %d, Название: %s, Цена: %s, Количество: %d\n",
			p.ID, p.Name, p.Price, p.Quantity)
	}
}

func (s *Shell) addCustomer(ctx context.Context) error {
	fmt.Fprintln(s.out, "Список покупателей перед добавлением:")
	s.showAllCustomers(ctx)

	name, err := s.v.PromptText("Введите имя покупателя: ")
	if err != nil {
		return err
	}
	balance, err := s.v.PromptPrice("Введите баланс покупателя: ")
	if err != nil {
		return err
	}

	id := s.customers.NextID(ctx)
	c, err := customer.New(id, name, balance)
	if err != nil {
		fmt.Fprintf(s.out, "Ошибка: %v. Покупатель не добавлен.\n", err)
		return nil
	}
	s.customers.Add(ctx, c)
	s.log.Info("customer_added",
		observability.F("customer_id", id),
		observability.F("name", name),
	)

	fmt.Fprintln(s.out, "Покупатель добавлен.")
	fmt.Fprintln(s.out, "Обновленный список покупателей")
	s.showAllCustomers(ctx)
	return nil
}

func (s *Shell) deleteCustomer(ctx context.Context) error {
	fmt.Fprintln(s.out, "Список покупателей перед удалением:")
	s.showAllCustomers(ctx)

	id, err := s.v.PromptInt("Введите ID покупателя для удаления: ")
	if err != nil {
		return err
	}
	s.customers.Delete(ctx, id)
	s.log.Info("customer_deleted", observability.F("customer_id", id))

	fmt.Fprintln(s.out, "Покупатель удален.")
	fmt.Fprintln(s.out, "Обновленный список покупателей")
	s.showAllCustomers(ctx)
	return nil
}

func (s *Shell) showAllCustomers(ctx context.Context) {
	fmt.Fprintln(s.out, "Список покупателей:")
	for _, c := range s.customers.List(ctx) {
		fmt.Fprintf(s.out, "- ID: %d, Имя: %s, Баланс: %s\n", c.ID, c.Name, c.Balance)
	}
}

func (s *Shell) makePurchase(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "Список покупателей которые будут совершать покупку:")
		s.showAllCustomers(ctx)

		customerID, err := s.v.PromptExistingCustomerID("Введите ID покупателя: ", s.customers.List(ctx))
		if err != nil {
			return err
		}

		fmt.Fprintln(s.out, "Список продуктов для продажи:")
		s.showAllProducts(ctx)

		productID, err := s.v.PromptExistingProductID("Введите ID продукта: ", s.products.List(ctx))
		if err != nil {
			return err
		}
		quantity, err := s.v.PromptInt("Введите количество для покупки: ")
		if err != nil {
			return err
		}

		s.reportPurchase(ctx, purchase.Input{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
		})

		again, err := s.promptContinue()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Shell) reportPurchase(ctx context.Context, cmd purchase.Input) {
	res, err := s.engine.Execute(ctx, cmd)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Покупка успешно совершена. Остаток товара: %d\n", res.RemainingStock)
		fmt.Fprintf(s.out, "Баланс покупателя: %s=%s\n", res.Record.CustomerName, res.RemainingBalance)
		if res.AuditErr != nil {
			fmt.Fprintf(s.out, "Ошибка при сохранении информации о покупке в файл: %v\n", res.AuditErr)
		} else {
			fmt.Fprintln(s.out, "Информация о покупке сохранена в файл.")
		}
	case errors.Is(err, purchase.ErrInsufficientBalance):
		fmt.Fprintln(s.out, "Недостаточно средств у покупателя.")
	case errors.Is(err, purchase.ErrInsufficientStock):
		fmt.Fprintln(s.out, "Недостаточное количество товара.")
	case errors.Is(err, purchase.ErrCustomerNotFound), errors.Is(err, purchase.ErrProductNotFound):
		fmt.Fprintln(s.out, "Неверный ID покупателя или продукта.")
	case errors.Is(err, purchase.ErrInvalidQuantity):
		fmt.Fprintln(s.out, "Ошибка: количество не может быть отрицательным или нулевым.")
	default:
		fmt.Fprintf(s.out, "Ошибка покупки: %v\n", err)
	}
}

func (s *Shell) promptContinue() (bool, error) {
	for {
		answer, err := s.v.PromptText("Хотите продолжить покупки?(да/нет) ")
		if err != nil {
			return false, err
		}
		switch {
		case strings.EqualFold(answer, "да"):
			return true, nil
		case strings.EqualFold(answer, "нет"):
			return false, nil
		default:
			fmt.Fprintln(s.out, "Неверный ввод. Попробуйте снова.")
		}
	}
}
