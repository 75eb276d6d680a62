package event

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Event represents a scheduled foundation event open for public registration
type Event struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description" gorm:"not null"`
	Date             time.Time      `json:"date" gorm:"not null"`
	Location         string         `json:"location"`
	Category         string         `json:"category"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`
	MaxAttendees     int            `json:"max_attendees"`
	CurrentAttendees int            `json:"current_attendees" gorm:"not null;default:0"`
	Featured         bool           `json:"featured" gorm:"not null;default:false"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "events"
}

// BeforeCreate sets a UUID before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NewEvent creates a new event with the given parameters
func NewEvent(title, description string, date time.Time, location, category string, maxAttendees int) *Event {
	return &Event{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Date:         date,
		Location:     location,
		Category:     category,
		MaxAttendees: maxAttendees,
		CreatedAt:    time.Now(),
	}
}

// HasCapacity reports whether the event is capped. Organizers leave the
// attendee limit blank for open events, which the admin form stores as 0,
// so zero and negative values both mean uncapped.
func (e *Event) HasCapacity() bool {
	return e.MaxAttendees > 0
}

// IsFull reports whether a capped event has no spots left
func (e *Event) IsFull() bool {
	return e.HasCapacity() && e.CurrentAttendees >= e.MaxAttendees
}

// SpotsRemaining returns how many registrations the event can still accept.
// The second return value is true when the event is uncapped; the count is
// never negative even if the stored counter overshoots the cap.
func (e *Event) SpotsRemaining() (int, bool) {
	if !e.HasCapacity() {
		return 0, true
	}
	remaining := e.MaxAttendees - e.CurrentAttendees
	if remaining < 0 {
		remaining = 0
	}
	return remaining, false
}

// IsUpcoming reports whether the event is scheduled after now
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.Date.After(now)
}

// DaysUntil returns the number of days until the event, rounded up.
// Past events yield a negative count.
func (e *Event) DaysUntil(now time.Time) int {
	return int(math.Ceil(e.Date.Sub(now).Hours() / 24))
}

// Validate checks if the event data is valid
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Description == "" {
		return fmt.Errorf("description is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if e.CurrentAttendees < 0 {
		return fmt.Errorf("current_attendees cannot be negative")
	}
	return nil
}
