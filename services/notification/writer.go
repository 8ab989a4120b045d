package notification

import (
	"context"
	"fmt"

	"notilog/database/repository"
	"notilog/events"
	"notilog/models"

	"go.uber.org/zap"
)

// Writer persists notifications delivered over the event bus.
type Writer interface {
	HandleNewNotification(ctx context.Context, e events.Event) error
}

// DefaultWriter is the production implementation, writing through the
// notification repository.
type DefaultWriter struct {
	repo   repository.NotificationRepository
	logger *zap.Logger
}

func NewDefaultWriter(repo repository.NotificationRepository, logger *zap.Logger) (*DefaultWriter, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification writer initialization error: repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultWriter{repo: repo, logger: logger}, nil
}

// HandleNewNotification builds a record from the event payload and inserts it.
// The store assigns the ID and CreatedAt. An insert failure is returned to the
// dispatcher's logging boundary; by then the HTTP response has already been
// sent, so the caller never sees it and nothing is retried.
func (w *DefaultWriter) HandleNewNotification(ctx context.Context, e events.Event) error {
	p, ok := e.Payload.(events.NewNotificationPayload)
	if !ok {
		return fmt.Errorf("HandleNewNotification: unexpected payload type %T", e.Payload)
	}

	n := models.Notification{
		Message: p.Message,
		Type:    p.Type,
	}
	if err := w.repo.Create(ctx, &n); err != nil {
		return fmt.Errorf("HandleNewNotification: %w", err)
	}

	w.logger.Info("notification persisted",
		zap.Uint("id", n.ID),
		zap.String("type", n.Type),
		zap.String("event_id", e.ID),
	)
	return nil
}
