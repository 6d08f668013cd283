package services

import (
	"errors"
	"testing"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/models"
)

func TestRegisterUser(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser(RegisterInput{
		Username:  "jdoe",
		Email:     "jdoe@campus.local",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
		Faculty:   "medicine",
		Program:   "MBChB",
		Year:      "2",
	})
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("Expected role student, got %q", user.Role)
	}
	if user.Password == "secret123" {
		t.Error("Expected password to be hashed")
	}

	// Credentials work after signup
	authed, err := Authenticate("jdoe", "secret123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, authed.ID)
	}
}

func TestRegisterUserValidation(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "taken", models.RoleStudent)

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing fields", RegisterInput{Username: "x"}},
		{"short password", RegisterInput{
			Username: "newuser", Email: "new@campus.local", Password: "abc",
			FirstName: "A", LastName: "B", Faculty: "f", Program: "p", Year: "1",
		}},
		{"duplicate username", RegisterInput{
			Username: "taken", Email: "fresh@campus.local", Password: "secret123",
			FirstName: "A", LastName: "B", Faculty: "f", Program: "p", Year: "1",
		}},
		{"duplicate email", RegisterInput{
			Username: "fresh", Email: "taken@campus.local", Password: "secret123",
			FirstName: "A", LastName: "B", Faculty: "f", Program: "p", Year: "1",
		}},
	}
	for _, tc := range cases {
		if _, err := RegisterUser(tc.input); !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	setupTestDB(t)

	if _, err := RegisterUser(RegisterInput{
		Username: "jdoe", Email: "jdoe@campus.local", Password: "secret123",
		FirstName: "Jane", LastName: "Doe", Faculty: "medicine", Program: "MBChB", Year: "2",
	}); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	// Unknown user and wrong password are indistinguishable
	if _, err := Authenticate("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := Authenticate("jdoe", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "jdoe", models.RoleStudent)
	createTestUser(t, "other", models.RoleStudent)

	err := UpdateProfile(user, ProfileInput{
		FirstName: "Janet",
		LastName:  "Doe",
		Email:     "janet@campus.local",
		Faculty:   "pharmacy",
		Program:   "BPharm",
		Year:      "4",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	var reloaded models.User
	if err := dbFirstUser(&reloaded, user.ID); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.FirstName != "Janet" || reloaded.Faculty != "pharmacy" {
		t.Errorf("Expected updated profile, got %+v", reloaded)
	}

	// Cannot take another user's email
	err = UpdateProfile(user, ProfileInput{
		FirstName: "Janet", LastName: "Doe", Email: "other@campus.local",
	})
	if !IsValidation(err) {
		t.Errorf("Expected validation error for taken email, got %v", err)
	}
}

func TestDeleteUserCascade(t *testing.T) {
	setupTestDB(t)
	victim := createTestUser(t, "victim", models.RoleStudent)
	other := createTestUser(t, "other", models.RoleStudent)

	// Victim's post, with a comment and a reaction from someone else
	post := createTestPost(t, victim, "Victim post")
	if err := dbCreate(&models.Comment{PostID: post.ID, UserID: other.ID, Content: "hi"}); err != nil {
		t.Fatalf("comment create failed: %v", err)
	}
	if _, err := ToggleReaction(post.ID, other, models.ReactionPill); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	// Victim's activity on someone else's post
	otherPost := createTestPost(t, other, "Other post")
	if err := dbCreate(&models.Comment{PostID: otherPost.ID, UserID: victim.ID, Content: "me"}); err != nil {
		t.Fatalf("comment create failed: %v", err)
	}
	if _, err := ToggleReaction(otherPost.ID, victim, models.ReactionDNA); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	createTestEvent(t, victim, models.EventPending, time.Now().Add(24*time.Hour))

	if err := DeleteUser(victim.ID, victim); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if got := countRows(t, &models.User{}, "id = ?", victim.ID); got != 0 {
		t.Error("Expected user row gone")
	}
	if got := countRows(t, &models.Post{}, "user_id = ?", victim.ID); got != 0 {
		t.Error("Expected victim's posts gone")
	}
	if got := countRows(t, &models.Comment{}, "post_id = ?", post.ID); got != 0 {
		t.Error("Expected comments on victim's posts gone")
	}
	if got := countRows(t, &models.Reaction{}, "user_id = ? OR post_id = ?", victim.ID, post.ID); got != 0 {
		t.Error("Expected victim's reactions and reactions on their posts gone")
	}
	if got := countRows(t, &models.Event{}, "user_id = ?", victim.ID); got != 0 {
		t.Error("Expected victim's events gone")
	}
	if got := countRows(t, &models.Notification{}, "user_id = ?", victim.ID); got != 0 {
		t.Error("Expected victim's notifications gone")
	}

	// Everything belonging to the other user survives
	if got := countRows(t, &models.Post{}, "user_id = ?", other.ID); got != 1 {
		t.Errorf("Expected other user's post intact, got %d", got)
	}
}

func TestDeleteUserClearsIssuedApprovals(t *testing.T) {
	setupTestDB(t)
	student := createTestUser(t, "student", models.RoleStudent)
	prof := createTestUser(t, "prof", models.RoleFaculty)
	event := createTestEvent(t, student, models.EventPending, time.Now().Add(24*time.Hour))

	if _, err := ApproveEvent(event.ID, prof); err != nil {
		t.Fatalf("ApproveEvent failed: %v", err)
	}

	// The approver's account must remain deletable
	if err := DeleteUser(prof.ID, prof); err != nil {
		t.Fatalf("DeleteUser of approver failed: %v", err)
	}

	var reloaded models.Event
	if err := dbFirstEvent(&reloaded, event.ID); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Status != models.EventApproved {
		t.Errorf("Expected event still approved, got %q", reloaded.Status)
	}
	if reloaded.ApprovedByID != nil {
		t.Errorf("Expected approver reference cleared, got %v", *reloaded.ApprovedByID)
	}
}

func TestDeleteUserPermissions(t *testing.T) {
	setupTestDB(t)
	victim := createTestUser(t, "victim", models.RoleStudent)
	stranger := createTestUser(t, "stranger", models.RoleStudent)
	admin := createTestUser(t, "boss", models.RoleAdmin)

	if err := DeleteUser(victim.ID, stranger); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden for stranger, got %v", err)
	}
	if err := DeleteUser(victim.ID, admin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := DeleteUser(9999, admin); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func dbFirstUser(dest *models.User, id uint) error {
	return db.DB.First(dest, id).Error
}

func dbCreate(value interface{}) error {
	return db.DB.Create(value).Error
}
