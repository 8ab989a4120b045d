package repository

import (
	"context"
	"fmt"

	"notilog/database"
	"notilog/models"
)

// NotificationRepository defines the interface for notification data access.
// Notifications are append-only, so Create is the whole surface.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
}

// GormNotificationRepo implements NotificationRepository using GORM.
type GormNotificationRepo struct{}

// NewGormNotificationRepo returns a repository backed by the global database handle.
func NewGormNotificationRepo() *GormNotificationRepo {
	return &GormNotificationRepo{}
}

// Create inserts a new notification record into the database. The store
// assigns ID and CreatedAt, and GORM writes them back into n.
func (repo *GormNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if err := database.DB.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
