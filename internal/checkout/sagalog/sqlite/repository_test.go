package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/steelisia/commerce-backend/internal/checkout/sagalog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "checkout.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndGetLatest(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	entries := []*sagalog.Entry{
		{SagaID: "order-1", Status: sagalog.StatusStarted, ErrorMessages: "[]", UpdatedAt: time.Now().UTC()},
		{SagaID: "order-1", Status: sagalog.StatusStepDone, CurrentStep: "persist_order", ErrorMessages: "[]", UpdatedAt: time.Now().UTC().Add(time.Millisecond)},
		{SagaID: "order-1", Status: sagalog.StatusCompleted, ErrorMessages: "[]", UpdatedAt: time.Now().UTC().Add(2 * time.Millisecond)},
	}
	for _, e := range entries {
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("Save(%s) error = %v", e.Status, err)
		}
	}

	latest, err := repo.GetLatest(ctx, "order-1")
	if err != nil {
		t.Fatalf("GetLatest() error = %v", err)
	}
	if latest.Status != sagalog.StatusCompleted {
		t.Errorf("latest status = %s, want COMPLETED", latest.Status)
	}
}

func TestGetLatestUnknownSaga(t *testing.T) {
	repo := openTestRepo(t)

	if _, err := repo.GetLatest(context.Background(), "nope"); err == nil {
		t.Error("GetLatest() should fail for an unknown saga id")
	}
}

func TestSaveFailedEntryKeepsErrors(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	entry := sagalog.NewEntry(ctx, "order-2", sagalog.StatusFailed, "request_payment_link",
		[]string{"step request_payment_link failed: status 503"})
	if err := repo.Save(ctx, entry); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	latest, err := repo.GetLatest(ctx, "order-2")
	if err != nil {
		t.Fatalf("GetLatest() error = %v", err)
	}
	if latest.ErrorMessages == "[]" || latest.ErrorMessages == "" {
		t.Errorf("ErrorMessages = %q, want recorded failure", latest.ErrorMessages)
	}
	if latest.CurrentStep != "request_payment_link" {
		t.Errorf("CurrentStep = %q", latest.CurrentStep)
	}
}
