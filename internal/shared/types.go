package shared

// Gin context keys set by middleware and read by handlers.
const (
	ContextKeyRequestID = "request_id"
	ContextKeyClientIP  = "client_ip"
	ContextKeyUsername  = "username"
	ContextKeyRole      = "role"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Background task types and queues.
const (
	TypeWarmCache  = "cms:warm_cache"
	TypeSweepCache = "cms:sweep_cache"

	QueueCache = "cache"
)
