// Package sagalog defines the durable audit trail of checkout executions.
//
// Every state transition of a checkout saga is appended as one row keyed by
// the order id, with the active trace id captured alongside so a stuck or
// failed checkout can be correlated with its distributed trace.
package sagalog

import "time"

// Status is the lifecycle state of a checkout execution.
type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusStepDone     Status = "STEP_DONE"
	StatusCompleted    Status = "COMPLETED"
	StatusCompensating Status = "COMPENSATING"
	StatusFailed       Status = "FAILED"
)

// Entry is one row in the checkout_logs table: a point-in-time snapshot of
// a checkout execution.
type Entry struct {
	// SagaID is the order id, so log rows join with business data.
	SagaID string

	Status Status

	// CurrentStep names the step that just executed or failed; empty on
	// STARTED and COMPLETED rows.
	CurrentStep string

	// ErrorMessages accumulates failure details as a JSON array, one entry
	// per failed step or failed compensation.
	ErrorMessages string

	// TraceID and SpanID come from the OpenTelemetry span active when the
	// entry was written. Empty when no span is active (e.g. unit tests).
	TraceID string
	SpanID  string

	UpdatedAt time.Time
}
