package telemetry

import (
	"github.com/grocerysim/grocery-shop/internal/infrastructure/observability/prometrics"
	"github.com/grocerysim/grocery-shop/internal/observability"
)

type provider struct {
	tracer     observability.TraceCtx
	logger     observability.Logger
	counters   map[observability.MetricKey]observability.Counter
	histograms map[observability.MetricKey]observability.Histogram
}

// New assembles the telemetry bundle and registers the application's metric
// instruments up front. Unknown metric keys resolve to no-op instruments.
func New(tracer observability.TraceCtx, logger observability.Logger, metrics prometrics.Registry) observability.Telemetry {
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	if logger == nil {
		logger = observability.NopLogger()
	}

	p := &provider{
		tracer:     tracer,
		logger:     logger,
		counters:   map[observability.MetricKey]observability.Counter{},
		histograms: map[observability.MetricKey]observability.Histogram{},
	}

	if metrics != nil {
		p.counters[observability.MPurchaseRequests] = metrics.Counter(
			string(observability.MPurchaseRequests),
			"Total purchase transactions executed.",
			"outcome",
		)
		p.counters[observability.MAuditAppends] = metrics.Counter(
			string(observability.MAuditAppends),
			"Total audit log append attempts.",
			"outcome",
		)
		p.histograms[observability.MPurchaseDuration] = metrics.Histogram(
			string(observability.MPurchaseDuration),
			"Duration of purchase execution in seconds.",
			nil,
		)
	}

	return p
}

func (p *provider) Tracer() observability.TraceCtx { return p.tracer }
func (p *provider) Logger() observability.Logger   { return p.logger }

func (p *provider) Counter(name observability.MetricKey) observability.Counter {
	if c, ok := p.counters[name]; ok && c != nil {
		return c
	}
	return observability.NopCounter()
}

func (p *provider) Histogram(name observability.MetricKey) observability.Histogram {
	if h, ok := p.histograms[name]; ok && h != nil {
		return h
	}
	return observability.NopHistogram()
}
