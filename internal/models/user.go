package models

import (
	"time"
)

// Role values. "leader" is a student leader (club or association chair).
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleLeader  = "leader"
	RoleAdmin   = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	FirstName string    `gorm:"size:64" json:"first_name"`
	LastName  string    `gorm:"size:64" json:"last_name"`
	Faculty   string    `gorm:"size:100" json:"faculty"` // medicine, pharmacy, nursing...
	Program   string    `gorm:"size:100" json:"program"`
	Year      string    `gorm:"size:20" json:"year"` // 1-6, intern, postgrad, staff, faculty
	Role      string    `gorm:"size:20;default:'student';not null" json:"role"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt, user removal is a hard delete with explicit cascade
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds site moderation rights.
// Derived purely from the role column, never from session copies.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleLeader
}

// CanApproveEvents reports whether the user may transition event status.
func (u *User) CanApproveEvents() bool {
	return u.Role == RoleAdmin || u.Role == RoleLeader || u.Role == RoleFaculty
}
