package auditlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/grocerysim/grocery-shop/internal/domain/purchase"
)

// BlockWriter appends one multi-line block per purchase, terminated by a
// "----" separator:
//
//	Покупатель ID: <int>
//	Дата покупки: <YYYY-MM-DD HH:MM:SS>
//	Список товаров:
//	- <name>: <price>
//	Сумма покупки: <amount>
//	----
type BlockWriter struct {
	path string
}

func NewBlockWriter(path string) *BlockWriter {
	return &BlockWriter{path: path}
}

func (w *BlockWriter) Append(ctx context.Context, rec *purchase.Record) error {
	_ = ctx
	if rec == nil {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Покупатель ID: %d\n", rec.CustomerID)
	fmt.Fprintf(&b, "Дата покупки: %s\n", rec.OccurredAt.Format(timeLayout))
	b.WriteString("Список товаров:\n")
	for _, line := range rec.Products {
		fmt.Fprintf(&b, "- %s: %s\n", line.Name, line.Price)
	}
	fmt.Fprintf(&b, "Сумма покупки: %s\n", rec.TotalAmount)
	b.WriteString("----\n")

	return appendFile(w.path, b.String())
}
