package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grocerysim/grocery-shop/internal/domain/catalog"
	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
	domain "github.com/grocerysim/grocery-shop/internal/domain/purchase"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/auditlog"
	"github.com/grocerysim/grocery-shop/internal/observability"
	"github.com/grocerysim/grocery-shop/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	useCasePurchase = "purchase.execute"
	spanName        = "UC.ExecutePurchase"
)

var (
	ErrCustomerNotFound    = errors.New("purchase: customer not found")
	ErrProductNotFound     = errors.New("purchase: product not found")
	ErrInvalidQuantity     = errors.New("purchase: quantity must be greater than zero")
	ErrInsufficientStock   = catalog.ErrInsufficientStock
	ErrInsufficientBalance = customer.ErrInsufficientBalance
)

// ProductResolver is the slice of the product registry the engine needs.
type ProductResolver interface {
	FindByID(ctx context.Context, id int) (*catalog.Product, error)
}

// CustomerResolver is the slice of the customer registry the engine needs.
type CustomerResolver interface {
	FindByID(ctx context.Context, id int) (*customer.Customer, error)
}

// Engine executes a single purchase as an all-or-nothing sequence: resolve
// both entities, check stock, check balance, then apply both deductions and
// append an audit record. Every abort path returns before any mutation.
type Engine struct {
	products  ProductResolver
	customers CustomerResolver
	writers   []auditlog.Writer

	tracer observability.TraceCtx
	log    observability.Logger

	reqCounter   observability.Counter   // purchase_requests_total{outcome}
	durHistogram observability.Histogram // purchase_duration_seconds
	auditCounter observability.Counter   // audit_appends_total{outcome}
}

// NewEngine wires the registries, the audit writers, and telemetry.
func NewEngine(
	products ProductResolver,
	customers CustomerResolver,
	writers []auditlog.Writer,
	tel observability.Telemetry,
) *Engine {
	if tel == nil {
		tel = observability.NopTelemetry()
	}
	return &Engine{
		products:     products,
		customers:    customers,
		writers:      writers,
		tracer:       tel.Tracer(),
		log:          tel.Logger().With(observability.F("component", "purchase-engine")),
		reqCounter:   tel.Counter(observability.MPurchaseRequests),
		durHistogram: tel.Histogram(observability.MPurchaseDuration),
		auditCounter: tel.Counter(observability.MAuditAppends),
	}
}

type Input struct {
	CustomerID int
	ProductID  int
	Quantity   int
}

// Result reports a committed purchase. AuditErr is non-nil when the in-memory
// transaction succeeded but one or more audit appends failed; the purchase is
// still committed and the error is a warning for the operator.
type Result struct {
	Record           *domain.Record
	RemainingStock   int
	RemainingBalance money.Money
	AuditErr         error
}

// Execute runs the purchase protocol for one customer, product, and quantity.
func (e *Engine) Execute(ctx context.Context, cmd Input) (_ *Result, err error) {
	logger := logctx.FromOr(ctx, e.log).With(observability.F("use_case", useCasePurchase))

	ctx, span := e.tracer.Start(ctx, spanName,
		attribute.Int("purchase.customer_id", cmd.CustomerID),
		attribute.Int("purchase.product_id", cmd.ProductID),
		attribute.Int("purchase.quantity", cmd.Quantity),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"

	defer func() {
		lat := time.Since(start).Seconds()

		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		if e.reqCounter != nil {
			e.reqCounter.Add(1, observability.L("outcome", outcome))
		}
		if e.durHistogram != nil {
			e.durHistogram.Observe(lat)
		}

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("purchase_done", fields...)
	}()

	// The shell validator guarantees a positive quantity; revalidate anyway
	// so the engine holds its own invariants.
	if cmd.Quantity <= 0 {
		outcome, statusText = "error", "QUANTITY_INVALID"
		return nil, ErrInvalidQuantity
	}

	cust, lookupErr := e.customers.FindByID(ctx, cmd.CustomerID)
	if lookupErr != nil {
		outcome, statusText = "error", "CUSTOMER_NOT_FOUND"
		return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, cmd.CustomerID)
	}
	prod, lookupErr := e.products.FindByID(ctx, cmd.ProductID)
	if lookupErr != nil {
		outcome, statusText = "error", "PRODUCT_NOT_FOUND"
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, cmd.ProductID)
	}

	if !prod.Available(cmd.Quantity) {
		outcome, statusText = "error", "INSUFFICIENT_STOCK"
		return nil, fmt.Errorf("%w: %s has %d, requested %d",
			ErrInsufficientStock, prod.Name, prod.Quantity, cmd.Quantity)
	}

	totalCost := prod.Price.MulInt(cmd.Quantity)

	if !cust.CanAfford(totalCost) {
		outcome, statusText = "error", "INSUFFICIENT_BALANCE"
		return nil, fmt.Errorf("%w: balance %s, total %s",
			ErrInsufficientBalance, cust.Balance, totalCost)
	}

	// Both preconditions hold and nothing can interleave, so the two
	// deductions commit together.
	if err := cust.Deduct(totalCost); err != nil {
		outcome, statusText = "error", "DEDUCT_FAILED"
		return nil, fmt.Errorf("purchase: deduct balance: %w", err)
	}
	if err := prod.Reduce(cmd.Quantity); err != nil {
		outcome, statusText = "error", "REDUCE_FAILED"
		return nil, fmt.Errorf("purchase: reduce stock: %w", err)
	}

	rec := domain.NewRecord(
		cust.ID,
		cust.Name,
		[]domain.Line{{Name: prod.Name, Price: prod.Price}},
		cmd.Quantity,
		totalCost,
	)

	// Audit failure does not roll the transaction back: the in-memory state
	// wins over audit completeness, and the error surfaces as a warning.
	var auditErr error
	for _, w := range e.writers {
		appendErr := w.Append(ctx, rec)
		auditOutcome := "success"
		if appendErr != nil {
			auditOutcome = "error"
			auditErr = errors.Join(auditErr, appendErr)
		}
		if e.auditCounter != nil {
			e.auditCounter.Add(1, observability.L("outcome", auditOutcome))
		}
	}
	if auditErr != nil {
		statusText = "AUDIT_WRITE_FAILED"
		logger.Warn("audit_append_failed",
			observability.F("record_id", rec.ID),
			observability.F("error", auditErr.Error()),
		)
	}

	span.AddEvent("purchase.completed")
	span.SetAttributes(attribute.String("purchase.record_id", rec.ID))

	return &Result{
		Record:           rec,
		RemainingStock:   prod.Quantity,
		RemainingBalance: cust.Balance,
		AuditErr:         auditErr,
	}, nil
}
