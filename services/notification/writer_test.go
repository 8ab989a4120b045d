package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"notilog/events"
	"notilog/models"
)

// fakeRepo is an in-memory NotificationRepository. It mimics the store by
// assigning IDs and CreatedAt on insert.
type fakeRepo struct {
	mu      sync.Mutex
	created []models.Notification
	err     error
}

func (r *fakeRepo) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	n.ID = uint(len(r.created) + 1)
	n.CreatedAt = time.Now()
	r.created = append(r.created, *n)
	return nil
}

func (r *fakeRepo) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.created...)
}

func newNotificationEvent(message, typ string) events.Event {
	return events.Event{
		ID:         "evt-1",
		Name:       events.NewNotification,
		Payload:    events.NewNotificationPayload{Message: message, Type: typ},
		OccurredAt: time.Now(),
	}
}

func TestNewDefaultWriterRequiresRepo(t *testing.T) {
	t.Parallel()

	if _, err := NewDefaultWriter(nil, nil); err == nil {
		t.Fatal("expected an error for nil repository")
	}
}

func TestHandleNewNotificationPersistsRecord(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	w, err := NewDefaultWriter(repo, nil)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	if err := w.HandleNewNotification(context.Background(), newNotificationEvent("User logged in", "INFO")); err != nil {
		t.Fatalf("HandleNewNotification failed: %v", err)
	}

	created := repo.all()
	if len(created) != 1 {
		t.Fatalf("expected 1 record, got %d", len(created))
	}
	n := created[0]
	if n.Message != "User logged in" || n.Type != "INFO" {
		t.Errorf("unexpected record: %+v", n)
	}
	if n.ID == 0 {
		t.Error("expected the store to assign an ID")
	}
	if n.CreatedAt.IsZero() {
		t.Error("expected the store to assign CreatedAt")
	}
}

func TestHandleNewNotificationReturnsRepoError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("store unreachable")
	repo := &fakeRepo{err: wantErr}
	w, err := NewDefaultWriter(repo, nil)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	if err := w.HandleNewNotification(context.Background(), newNotificationEvent("m", "t")); !errors.Is(err, wantErr) {
		t.Errorf("expected repo error, got %v", err)
	}
}

func TestHandleNewNotificationRejectsUnexpectedPayload(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	w, err := NewDefaultWriter(repo, nil)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	e := events.Event{Name: events.NewNotification, Payload: "not a payload"}
	if err := w.HandleNewNotification(context.Background(), e); err == nil {
		t.Fatal("expected an error for an unexpected payload type")
	}
	if len(repo.all()) != 0 {
		t.Error("expected no record to be created")
	}
}
