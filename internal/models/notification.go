package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypePostReaction NotificationType = "post_reaction"
	NotificationTypeComment      NotificationType = "comment"
	NotificationTypeSystem       NotificationType = "system"
)

// Notification is a best-effort side-channel message. RelatedID points at
// the entity that caused it (post id, event id...), depending on Type.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // recipient
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string           `gorm:"size:200;not null" json:"title"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(50)" json:"type"`
	RelatedID uint             `json:"related_id"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
