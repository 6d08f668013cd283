package services

import (
	"errors"
	"time"

	"campusconnect/internal/db"
	"campusconnect/internal/models"
	"campusconnect/internal/utils"

	"gorm.io/gorm"
)

// Date buckets accepted by the events list filter.
const (
	DateToday    = "today"
	DateWeek     = "week"
	DateMonth    = "month"
	DatePast     = "past"
	DateUpcoming = "upcoming" // default
)

// EventInput carries the submit form fields. Start/End are already parsed by
// the handler; End is nil for single-day events with no declared end.
type EventInput struct {
	Title         string
	Description   string
	EventType     string
	Category      string
	Venue         string
	OrganizerName string
	ContactEmail  string
	ContactPhone  string
	Start         time.Time
	End           *time.Time
}

// EventFilter narrows ListEvents. Zero values mean "no filter"; DateRange
// defaults to upcoming.
type EventFilter struct {
	Status    string
	EventType string
	Category  string
	DateRange string
	Limit     int
}

// SubmitEvent creates a pending event owned by actor. Organizer and contact
// default to the submitter's own details, as on the paper form it replaces.
func SubmitEvent(actor *models.User, input EventInput) (*models.Event, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	var problems []string
	if input.Title == "" {
		problems = append(problems, "Event title is required")
	}
	if input.Description == "" {
		problems = append(problems, "Event description is required")
	}
	if input.EventType == "" {
		problems = append(problems, "Event type is required")
	}
	if input.Venue == "" {
		problems = append(problems, "Venue is required")
	}
	if input.Start.IsZero() {
		problems = append(problems, "Start date and time are required")
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	organizer := input.OrganizerName
	if organizer == "" {
		organizer = actor.FullName()
	}
	contactEmail := input.ContactEmail
	if contactEmail == "" {
		contactEmail = actor.Email
	}

	event := models.Event{
		Eid:           utils.RandStringBytesMaskImpr(8),
		UserID:        actor.ID,
		Title:         input.Title,
		Description:   input.Description,
		EventType:     input.EventType,
		Category:      input.Category,
		Venue:         input.Venue,
		OrganizerName: organizer,
		ContactEmail:  contactEmail,
		ContactPhone:  input.ContactPhone,
		StartDate:     input.Start,
		EndDate:       input.End,
		Status:        models.EventPending,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ApproveEvent moves a pending event to approved and records the approver.
// Approving twice fails with ErrInvalidState rather than succeeding silently.
func ApproveEvent(id uint, actor *models.User) (*models.Event, error) {
	return transition(id, actor, func(event *models.Event, now time.Time) {
		event.Status = models.EventApproved
		event.ApprovedByID = &actor.ID
		event.ApprovedAt = &now
		event.RejectionReason = ""
	})
}

// RejectEvent moves a pending event to rejected. The reason is mandatory and
// an empty one performs no mutation at all.
func RejectEvent(id uint, actor *models.User, reason string) (*models.Event, error) {
	if actor != nil && actor.CanApproveEvents() && reason == "" {
		return nil, &ValidationError{Problems: []string{"Rejection reason is required"}}
	}
	return transition(id, actor, func(event *models.Event, now time.Time) {
		event.Status = models.EventRejected
		event.ApprovedByID = &actor.ID
		event.ApprovedAt = &now
		event.RejectionReason = reason
	})
}

// transition applies the shared capability and state gates, then mutates.
func transition(id uint, actor *models.User, apply func(*models.Event, time.Time)) (*models.Event, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.CanApproveEvents() {
		return nil, ErrForbidden
	}

	var event models.Event
	if err := db.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if event.Status != models.EventPending {
		return nil, ErrInvalidState
	}

	apply(&event, time.Now())
	if err := db.DB.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event. Allowed for the owner and for anyone who
// could have approved it.
func DeleteEvent(id uint, actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	var event models.Event
	if err := db.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if event.UserID != actor.ID && !actor.CanApproveEvents() {
		return ErrForbidden
	}
	return db.DB.Delete(&event).Error
}

// ListEvents returns events matching the filter, ordered by start ascending.
// Date buckets are day-granular and computed against the current date.
func ListEvents(filter EventFilter) ([]models.Event, error) {
	query := db.DB.Preload("User").Model(&models.Event{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EventType != "" && filter.EventType != "all" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch filter.DateRange {
	case DateToday:
		query = query.Where("start_date >= ? AND start_date < ?", today, today.AddDate(0, 0, 1))
	case DateWeek:
		query = query.Where("start_date >= ? AND start_date < ?", today, today.AddDate(0, 0, 8))
	case DateMonth:
		query = query.Where("start_date >= ? AND start_date < ?", today, today.AddDate(0, 0, 31))
	case DatePast:
		query = query.Where("start_date < ?", today)
	default: // upcoming
		query = query.Where("start_date >= ?", today)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var events []models.Event
	err := query.Order("start_date ASC").Find(&events).Error
	return events, err
}

// PendingEvents returns the approval queue, oldest submission first.
func PendingEvents() ([]models.Event, error) {
	var events []models.Event
	err := db.DB.Preload("User").
		Where("status = ?", models.EventPending).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

// EventsByUser returns everything the user submitted, newest first.
func EventsByUser(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

// EventStats are the counters shown on the events page sidebar.
type EventStats struct {
	Upcoming int64
	Approved int64
	Pending  int64
}

func CountEvents() (EventStats, error) {
	var stats EventStats
	if err := db.DB.Model(&models.Event{}).
		Where("status = ? AND start_date >= ?", models.EventApproved, time.Now()).
		Count(&stats.Upcoming).Error; err != nil {
		return stats, err
	}
	if err := db.DB.Model(&models.Event{}).
		Where("status = ?", models.EventApproved).
		Count(&stats.Approved).Error; err != nil {
		return stats, err
	}
	err := db.DB.Model(&models.Event{}).
		Where("status = ?", models.EventPending).
		Count(&stats.Pending).Error
	return stats, err
}
