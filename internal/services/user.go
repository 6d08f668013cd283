package services

import (
	"errors"
	"strings"

	"campusconnect/internal/db"
	"campusconnect/internal/models"
	"campusconnect/internal/utils"

	"gorm.io/gorm"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Faculty   string
	Program   string
	Year      string
}

// RegisterUser creates a student account after uniqueness checks. The
// username/email unique indexes are the backstop for concurrent signups.
func RegisterUser(input RegisterInput) (*models.User, error) {
	var problems []string
	if input.Username == "" || input.Email == "" || input.Password == "" ||
		input.FirstName == "" || input.LastName == "" ||
		input.Faculty == "" || input.Program == "" || input.Year == "" {
		problems = append(problems, "All fields are required")
	}
	if input.Password != "" && len(input.Password) < 6 {
		problems = append(problems, "Password must be at least 6 characters")
	}

	if input.Username != "" {
		var existing models.User
		if err := db.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			problems = append(problems, "Username already exists")
		}
	}
	if input.Email != "" {
		var existing models.User
		if err := db.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			problems = append(problems, "Email already registered")
		}
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Faculty:   input.Faculty,
		Program:   input.Program,
		Year:      input.Year,
		Role:      models.RoleStudent,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Problems: []string{"Username or email already taken"}}
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials. The reply does not distinguish an
// unknown username from a wrong password.
func Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := db.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Faculty   string
	Program   string
	Year      string
}

// UpdateProfile edits the actor's own profile.
func UpdateProfile(actor *models.User, input ProfileInput) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	var problems []string
	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		problems = append(problems, "Name and email are required")
	}
	if input.Email != "" && input.Email != actor.Email {
		var existing models.User
		if err := db.DB.Where("email = ? AND id != ?", input.Email, actor.ID).First(&existing).Error; err == nil {
			problems = append(problems, "Email already registered")
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return db.DB.Model(actor).Updates(map[string]interface{}{
		"first_name": input.FirstName,
		"last_name":  input.LastName,
		"email":      input.Email,
		"faculty":    input.Faculty,
		"program":    input.Program,
		"year":       input.Year,
	}).Error
}

// DeleteUser removes an account and everything it owns. The cascade is an
// explicit invariant of user destruction rather than an ORM annotation:
// reactions, comments, events, posts (with their comments and reactions) and
// the user's own notifications all go in one transaction, so no surviving
// row can reference the deleted user.
func DeleteUser(userID uint, actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.ID != userID && !actor.IsAdmin() {
		return ErrForbidden
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Reaction{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		// Approvals the user issued on other people's events stay approved,
		// only the approver reference is cleared.
		if err := tx.Model(&models.Event{}).Where("approved_by_id = ?", userID).
			Update("approved_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
