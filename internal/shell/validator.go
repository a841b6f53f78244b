package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/grocerysim/grocery-shop/internal/domain/catalog"
	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
)

// ErrInputClosed signals that the operator closed the input stream; the
// caller should exit cleanly.
var ErrInputClosed = errors.New("shell: input closed")

var textPattern = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\s]+$`)

// Validator runs the blocking read/validate/retry loops over the operator's
// input. Every prompt repeats until a valid value arrives or the input ends.
type Validator struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewValidator(in io.Reader, out io.Writer) *Validator {
	return &Validator{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (v *Validator) readLine(prompt string) (string, error) {
	fmt.Fprint(v.out, prompt)
	if !v.scanner.Scan() {
		if err := v.scanner.Err(); err != nil {
			return "", fmt.Errorf("shell: read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(v.scanner.Text()), nil
}

// PromptText repeats until a non-empty line of letters and spaces arrives.
func (v *Validator) PromptText(prompt string) (string, error) {
	for {
		line, err := v.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(v.out, "Ошибка: ввод не может быть пустым.")
			continue
		}
		if !textPattern.MatchString(line) {
			fmt.Fprintln(v.out, "Ошибка! Ввод не должен быть числом. Пожалуйста, введите текст заново.")
			continue
		}
		return line, nil
	}
}

// PromptInt repeats until a parseable integer arrives.
func (v *Validator) PromptInt(prompt string) (int, error) {
	for {
		line, err := v.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(v.out, "Ошибка! Введите корректное целое число.")
			continue
		}
		return n, nil
	}
}

// PromptPositiveInt repeats until a strictly positive integer arrives.
func (v *Validator) PromptPositiveInt(prompt string) (int, error) {
	for {
		n, err := v.PromptInt(prompt)
		if err != nil {
			return 0, err
		}
		if n <= 0 {
			fmt.Fprintln(v.out, "Ошибка: количество не может быть отрицательным или нулевым. Введите положительное число.")
			continue
		}
		return n, nil
	}
}

// PromptPrice repeats until a strictly positive money amount arrives.
func (v *Validator) PromptPrice(prompt string) (money.Money, error) {
	for {
		line, err := v.readLine(prompt)
		if err != nil {
			return money.Money{}, err
		}
		m, parseErr := money.FromString(line)
		if parseErr != nil {
			fmt.Fprintln(v.out, "Ошибка! Введите число.")
			continue
		}
		if !m.IsPositive() {
			fmt.Fprintln(v.out, "Ошибка: цена не может быть отрицательной или нулевой. Введите положительное число.")
			continue
		}
		return m, nil
	}
}

// PromptUniqueProductName repeats until the name is textual and not already
// taken, compared case-insensitively.
func (v *Validator) PromptUniqueProductName(prompt string, products []*catalog.Product) (string, error) {
	for {
		name, err := v.PromptText(prompt)
		if err != nil {
			return "", err
		}

		taken := false
		for _, p := range products {
			if strings.EqualFold(p.Name, name) {
				taken = true
				break
			}
		}
		if taken {
			fmt.Fprintln(v.out, "Ошибка! Продукт с таким названием уже существует. Пожалуйста, введите другое название.")
			continue
		}
		fmt.Fprintln(v.out, "Название уникально, продолжаем добавление.")
		return name, nil
	}
}

// PromptExistingProductID repeats until the id matches a listed product.
func (v *Validator) PromptExistingProductID(prompt string, products []*catalog.Product) (int, error) {
	for {
		id, err := v.PromptInt(prompt)
		if err != nil {
			return 0, err
		}
		for _, p := range products {
			if p.ID == id {
				return id, nil
			}
		}
		fmt.Fprintln(v.out, "Ошибка! Продукт с таким ID не существует. Попробуйте снова.")
	}
}

// PromptExistingCustomerID repeats until the id matches a listed customer.
func (v *Validator) PromptExistingCustomerID(prompt string, customers []*customer.Customer) (int, error) {
	for {
		id, err := v.PromptInt(prompt)
		if err != nil {
			return 0, err
		}
		for _, c := range customers {
			if c.ID == id {
				return id, nil
			}
		}
		fmt.Fprintln(v.out, "Ошибка! Покупатель с таким ID не существует. Попробуйте снова.")
	}
}
