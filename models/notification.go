package models

import "time"

// Notification is a single logged notification. Rows are append-only: nothing
// in this service updates or deletes them after insert.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName pins the table name so renaming the struct cannot move the data.
func (Notification) TableName() string {
	return "notifications"
}
