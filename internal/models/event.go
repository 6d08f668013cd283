package models

import (
	"time"
)

// Event status lifecycle: pending -> approved | rejected. Both outcomes are
// terminal, there is no re-submission path.
const (
	EventPending  = "pending"
	EventApproved = "approved"
	EventRejected = "rejected"
)

type Event struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Eid             string     `gorm:"uniqueIndex;size:8;not null" json:"eid"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	User            User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title           string     `gorm:"size:200;not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	EventType       string     `gorm:"size:50;not null" json:"event_type"` // academic, sports, cultural...
	Category        string     `gorm:"size:50" json:"category"`            // workshop, seminar, competition...
	Venue           string     `gorm:"size:200;not null" json:"venue"`
	OrganizerName   string     `gorm:"size:100" json:"organizer_name"`
	ContactEmail    string     `gorm:"size:120" json:"contact_email"`
	ContactPhone    string     `gorm:"size:20" json:"contact_phone"`
	StartDate       time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Status          string     `gorm:"size:20;default:'pending';index" json:"status"`
	ApprovedByID    *uint      `gorm:"index" json:"approved_by_id"`
	ApprovedBy      *User      `gorm:"foreignKey:ApprovedByID" json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// EventTypes and EventCategories are the fixed choice lists on the submit form.
var EventTypes = []string{
	"academic", "sports", "cultural", "religious", "social",
	"workshop", "seminar", "conference", "career", "other",
}

var EventCategories = []string{
	"workshop", "seminar", "competition", "celebration",
	"conference", "exhibition", "lecture", "meeting",
}

func (e *Event) IsUpcoming() bool {
	return e.StartDate.After(time.Now())
}

func (e *Event) IsOngoing() bool {
	now := time.Now()
	if e.EndDate != nil {
		return !e.StartDate.After(now) && !e.EndDate.Before(now)
	}
	y1, m1, d1 := e.StartDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (e *Event) IsPast() bool {
	if e.EndDate != nil {
		return e.EndDate.Before(time.Now())
	}
	return e.StartDate.Before(time.Now())
}
