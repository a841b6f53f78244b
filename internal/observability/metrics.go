package observability

const (
	MPurchaseRequests MetricKey = "purchase_requests_total"
	MPurchaseDuration MetricKey = "purchase_duration_seconds"
	MAuditAppends     MetricKey = "audit_appends_total"
)
