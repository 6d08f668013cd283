package services

import (
	"errors"

	"campusconnect/internal/db"
	"campusconnect/internal/models"

	"gorm.io/gorm"
)

// CreateNotification stores a side-channel message for recipientID.
func CreateNotification(recipientID uint, title, message string, kind models.NotificationType, relatedID uint) (*models.Notification, error) {
	notification := models.Notification{
		UserID:    recipientID,
		Title:     title,
		Message:   message,
		Type:      kind,
		RelatedID: relatedID,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkNotificationRead flags one notification read. Only the recipient may.
func MarkNotificationRead(id uint, actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	var notification models.Notification
	if err := db.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if notification.UserID != actor.ID {
		return ErrForbidden
	}
	return db.DB.Model(&notification).Update("is_read", true).Error
}

// MarkAllRead flags every unread notification of the actor as read.
func MarkAllRead(actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	return db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", actor.ID, false).
		Update("is_read", true).Error
}

// ClearNotifications deletes every notification addressed to the actor.
func ClearNotifications(actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	return db.DB.Where("user_id = ?", actor.ID).Delete(&models.Notification{}).Error
}

// UnreadCount returns the badge number for the navbar.
func UnreadCount(userID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// RecentNotifications returns the newest notifications for the dropdown
// preview and the full listing page.
func RecentNotifications(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	query := db.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&notifications).Error
	return notifications, err
}
