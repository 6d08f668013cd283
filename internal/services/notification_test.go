package services

import (
	"errors"
	"testing"

	"campusconnect/internal/models"
)

func TestNotificationLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader", models.RoleStudent)

	n1, err := CreateNotification(user.ID, "First", "first message", models.NotificationTypeSystem, 0)
	if err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}
	if _, err := CreateNotification(user.ID, "Second", "second message", models.NotificationTypeComment, 7); err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}

	count, err := UnreadCount(user.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 unread, got %d", count)
	}

	if err := MarkNotificationRead(n1.ID, user); err != nil {
		t.Fatalf("MarkNotificationRead failed: %v", err)
	}
	count, _ = UnreadCount(user.ID)
	if count != 1 {
		t.Errorf("Expected 1 unread after marking one, got %d", count)
	}

	if err := MarkAllRead(user); err != nil {
		t.Fatalf("MarkAllRead failed: %v", err)
	}
	count, _ = UnreadCount(user.ID)
	if count != 0 {
		t.Errorf("Expected 0 unread after MarkAllRead, got %d", count)
	}

	if err := ClearNotifications(user); err != nil {
		t.Fatalf("ClearNotifications failed: %v", err)
	}
	if got := countRows(t, &models.Notification{}, "user_id = ?", user.ID); got != 0 {
		t.Errorf("Expected empty inbox, got %d", got)
	}
}

func TestMarkNotificationReadRecipientOnly(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner", models.RoleStudent)
	intruder := createTestUser(t, "intruder", models.RoleStudent)

	n, err := CreateNotification(owner.ID, "Private", "not yours", models.NotificationTypeSystem, 0)
	if err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}

	if err := MarkNotificationRead(n.ID, intruder); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
	if err := MarkNotificationRead(9999, owner); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := MarkNotificationRead(n.ID, nil); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
}

func TestRecentNotificationsOrderAndLimit(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader", models.RoleStudent)
	other := createTestUser(t, "other", models.RoleStudent)

	for i := 0; i < 7; i++ {
		if _, err := CreateNotification(user.ID, "N", "msg", models.NotificationTypeSystem, 0); err != nil {
			t.Fatalf("CreateNotification failed: %v", err)
		}
	}
	CreateNotification(other.ID, "Other", "not mine", models.NotificationTypeSystem, 0)

	notifications, err := RecentNotifications(user.ID, 5)
	if err != nil {
		t.Fatalf("RecentNotifications failed: %v", err)
	}
	if len(notifications) != 5 {
		t.Fatalf("Expected 5 notifications, got %d", len(notifications))
	}
	for _, n := range notifications {
		if n.UserID != user.ID {
			t.Errorf("Got notification for user %d, expected %d", n.UserID, user.ID)
		}
	}
}
