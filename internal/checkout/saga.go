// Package checkout runs order creation with payment as a small saga:
// persist the order, then request a hosted payment link. A gateway failure
// triggers compensation so the order is never left in an ambiguous state.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/steelisia/commerce-backend/internal/checkout/sagalog"
)

// Step is a single unit of work in the saga. Every step must be able to
// undo its effects.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator executes steps in order and compensates completed steps in
// LIFO order when one fails. Transitions are appended to the checkout log.
type Orchestrator struct {
	sagaID string
	steps  []Step
	logs   sagalog.Repository // nil-safe: logging skipped if nil
}

func NewOrchestrator(sagaID string, steps []Step, logs sagalog.Repository) *Orchestrator {
	return &Orchestrator{sagaID: sagaID, steps: steps, logs: logs}
}

// Start runs the saga. The returned error is the failing step's error; by
// the time it returns, all completed steps have been compensated.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.record(ctx, sagalog.StatusStarted, "", nil)

	var completed []Step
	for _, step := range o.steps {
		slog.InfoContext(ctx, "executing checkout step", "saga_id", o.sagaID, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.ErrorContext(ctx, "checkout step failed, rolling back",
				"saga_id", o.sagaID, "step", step.Name(), "error", err)
			errs := []string{fmt.Sprintf("step %s failed: %v", step.Name(), err)}
			o.record(ctx, sagalog.StatusCompensating, step.Name(), errs)
			errs = append(errs, o.rollback(ctx, completed)...)
			o.record(ctx, sagalog.StatusFailed, step.Name(), errs)
			return err
		}
		completed = append(completed, step)
		o.record(ctx, sagalog.StatusStepDone, step.Name(), nil)
	}

	o.record(ctx, sagalog.StatusCompleted, "", nil)
	return nil
}

// rollback compensates completed steps newest-first. Compensation errors are
// logged and collected but never stop the remaining compensations.
func (o *Orchestrator) rollback(ctx context.Context, steps []Step) []string {
	var errs []string
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		slog.InfoContext(ctx, "compensating checkout step", "saga_id", o.sagaID, "step", step.Name())
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "CRITICAL: checkout compensation failed",
				"saga_id", o.sagaID, "step", step.Name(), "error", err)
			errs = append(errs, fmt.Sprintf("compensation of %s failed: %v", step.Name(), err))
		}
	}
	return errs
}

func (o *Orchestrator) record(ctx context.Context, status sagalog.Status, step string, errs []string) {
	if o.logs == nil {
		return
	}
	entry := sagalog.NewEntry(ctx, o.sagaID, status, step, errs)
	if err := o.logs.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to append checkout log entry",
			"saga_id", o.sagaID, "status", status, "error", err)
	}
}
