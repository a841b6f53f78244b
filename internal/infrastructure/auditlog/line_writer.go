package auditlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/grocerysim/grocery-shop/internal/domain/purchase"
)

// LineWriter appends one summary line per purchase:
//
//	Дата: <YYYY-MM-DD HH:MM:SS>, Покупатель: <name>, Продукт: <name>, Количество: <int>
type LineWriter struct {
	path string
}

func NewLineWriter(path string) *LineWriter {
	return &LineWriter{path: path}
}

func (w *LineWriter) Append(ctx context.Context, rec *purchase.Record) error {
	_ = ctx
	if rec == nil {
		return nil
	}

	names := make([]string, 0, len(rec.Products))
	for _, line := range rec.Products {
		names = append(names, line.Name)
	}

	payload := fmt.Sprintf("Дата: %s, Покупатель: %s, Продукт: %s, Количество: %d\n",
		rec.OccurredAt.Format(timeLayout),
		rec.CustomerName,
		strings.Join(names, ", "),
		rec.Quantity,
	)
	return appendFile(w.path, payload)
}
