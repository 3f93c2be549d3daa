package types

// TimeResult is the wire shape of a successful time lookup. Source tells which
// hop produced it: "api2-service" straight from the provider, "api1->api2" when
// the gateway re-wraps the provider's answer.
type TimeResult struct {
	Timestamp string `json:"timestamp" validate:"required"`
	Timezone  string `json:"timezone" validate:"required"`
	RequestID string `json:"request_id" validate:"required"`
	Source    string `json:"source" validate:"required"`
}

// ErrorResult is the wire shape of a failed gateway request. Timestamp is the
// moment the error was produced, not the requested time.
type ErrorResult struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

type TimeQuery struct {
	Timezone  string `form:"timezone"`
	RequestID string `form:"request_id"`
}

type HealthResult struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

const (
	SourceProvider = "api2-service"
	SourceGateway  = "api1->api2"
)
