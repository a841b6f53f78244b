// Package auditlog appends completed purchases to a durable text log.
//
// Two historical record formats coexist: a single-line summary and a
// multi-line block. Both are kept as independent writers so either or both
// can be wired behind the purchase engine.
package auditlog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/grocerysim/grocery-shop/internal/domain/purchase"
)

const timeLayout = "2006-01-02 15:04:05"

var ErrWrite = errors.New("auditlog: write failed")

// Writer appends one record per completed purchase. Failures are reported to
// the caller and are never fatal; the in-memory transaction stands regardless.
type Writer interface {
	Append(ctx context.Context, rec *purchase.Record) error
}

// appendFile opens the log in append mode, writes the payload, and flushes
// before closing, so each call leaves a fully written record behind.
func appendFile(path, payload string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrWrite, path, err)
	}

	if _, err := f.WriteString(payload); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: sync: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrWrite, err)
	}
	return nil
}
