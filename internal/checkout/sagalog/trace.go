package sagalog

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewEntry builds a log entry, extracting trace and span ids from the
// active OpenTelemetry span in ctx. Both ids are empty strings when no span
// is active.
func NewEntry(ctx context.Context, sagaID string, status Status, currentStep string, errs []string) *Entry {
	errJSON := "[]"
	if len(errs) > 0 {
		if b, err := json.Marshal(errs); err == nil {
			errJSON = string(b)
		}
	}

	entry := &Entry{
		SagaID:        sagaID,
		Status:        status,
		CurrentStep:   currentStep,
		ErrorMessages: errJSON,
		UpdatedAt:     time.Now().UTC(),
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		entry.TraceID = sc.TraceID().String()
		entry.SpanID = sc.SpanID().String()
	}

	return entry
}
