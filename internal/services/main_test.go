package services

import (
	"testing"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/models"
	"campusconnect/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global connection at a fresh in-memory SQLite
// database with the full schema migrated.
func setupTestDB(t *testing.T) {
	t.Helper()

	// _foreign_keys=on so constraint violations fail here like on Postgres
	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled :memory: connection is a different empty database; keep one.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb
}

func createTestUser(t *testing.T, username, role string) *models.User {
	t.Helper()

	user := models.User{
		Username:  username,
		Email:     username + "@campus.local",
		Password:  "x",
		FirstName: "Test",
		LastName:  "User",
		Faculty:   "medicine",
		Program:   "MBChB",
		Year:      "3",
		Role:      role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func createTestPost(t *testing.T, author *models.User, title string) *models.Post {
	t.Helper()

	post := models.Post{
		Pid:      utils.RandStringBytesMaskImpr(8),
		UserID:   author.ID,
		Title:    title,
		Content:  "some content",
		Category: "news",
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return &post
}

func createTestEvent(t *testing.T, owner *models.User, status string, start time.Time) *models.Event {
	t.Helper()

	event := models.Event{
		Eid:         utils.RandStringBytesMaskImpr(8),
		UserID:      owner.ID,
		Title:       "Test Event",
		Description: "a test event",
		EventType:   "academic",
		Category:    "seminar",
		Venue:       "Main Hall",
		StartDate:   start,
		Status:      status,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	return &event
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	q := db.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}
