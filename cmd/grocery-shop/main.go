package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apppurchase "github.com/grocerysim/grocery-shop/internal/application/purchase"
	"github.com/grocerysim/grocery-shop/internal/config"
	"github.com/grocerysim/grocery-shop/internal/domain/catalog"
	"github.com/grocerysim/grocery-shop/internal/domain/customer"
	"github.com/grocerysim/grocery-shop/internal/domain/money"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/auditlog"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/memory"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/observability/oteltrace"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/observability/prometrics"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/observability/telemetry"
	"github.com/grocerysim/grocery-shop/internal/infrastructure/observability/zaplogger"
	"github.com/grocerysim/grocery-shop/internal/observability"
	"github.com/grocerysim/grocery-shop/internal/shell"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logger := zaplogger.New(
		observability.F("service", cfg.ServiceName),
		observability.F("env", cfg.Env),
	)
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	metrics := prometrics.New("grocery_shop", "")
	tracer := oteltrace.New(cfg.ServiceName)
	tel := telemetry.New(tracer, logger, metrics)

	productRegistry := memory.NewProductRegistry()
	customerRegistry := memory.NewCustomerRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedData {
		seedProducts(ctx, productRegistry)
		seedCustomers(ctx, customerRegistry)
		logger.Info("seed_data_loaded")
	}

	// Both historical audit formats append to the same file, as the original
	// shop wrote them.
	writers := []auditlog.Writer{
		auditlog.NewBlockWriter(cfg.AuditLogPath),
		auditlog.NewLineWriter(cfg.AuditLogPath),
	}

	engine := apppurchase.NewEngine(productRegistry, customerRegistry, writers, tel)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			logger.Info("metrics_server_start", observability.F("addr", cfg.MetricsAddr))
			err := metricsServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics_server_error", observability.F("error", err.Error()))
			}
		}()
	}

	sh := shell.New(productRegistry, customerRegistry, engine, os.Stdin, os.Stdout, logger)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("shell_error", observability.F("error", err.Error()))
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics_server_shutdown_error", observability.F("error", err.Error()))
		}
	}

	logger.Info("shop_stopped")
}

func seedProducts(ctx context.Context, r *memory.ProductRegistry) {
	seeds := []struct {
		name     string
		price    string
		quantity int
	}{
		{"Яблоки", "1.99", 50},
		{"Хлеб", "0.99", 30},
		{"Молоко", "0.89", 20},
		{"Сыр", "3.49", 15},
		{"Яйца (десяток)", "2.99", 25},
	}
	for _, s := range seeds {
		p, err := catalog.New(r.NextID(ctx), s.name, money.MustFromString(s.price), s.quantity)
		if err != nil {
			panic(err)
		}
		r.Add(ctx, p)
	}
}

func seedCustomers(ctx context.Context, r *memory.CustomerRegistry) {
	seeds := []struct {
		name    string
		balance string
	}{
		{"Анна", "1000.00"},
		{"Иван", "500.00"},
		{"Ольга", "750.00"},
		{"Дмитрий", "1200.00"},
	}
	for _, s := range seeds {
		c, err := customer.New(r.NextID(ctx), s.name, money.MustFromString(s.balance))
		if err != nil {
			panic(err)
		}
		r.Add(ctx, c)
	}
}
