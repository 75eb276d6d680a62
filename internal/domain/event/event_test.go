package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasCapacity(t *testing.T) {
	assert.True(t, (&Event{MaxAttendees: 50}).HasCapacity())
	assert.False(t, (&Event{MaxAttendees: 0}).HasCapacity(), "zero means uncapped")
	assert.False(t, (&Event{MaxAttendees: -1}).HasCapacity(), "negative means uncapped")
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		current int
		full    bool
	}{
		{"open spots", 50, 10, false},
		{"exactly full", 50, 50, true},
		{"counter overshoot", 50, 51, true},
		{"uncapped never full", 0, 10000, false},
		{"negative cap never full", -5, 10000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{MaxAttendees: tt.max, CurrentAttendees: tt.current}
			assert.Equal(t, tt.full, e.IsFull())
		})
	}
}

func TestSpotsRemaining(t *testing.T) {
	spots, unlimited := (&Event{MaxAttendees: 50, CurrentAttendees: 42}).SpotsRemaining()
	assert.Equal(t, 8, spots)
	assert.False(t, unlimited)

	spots, unlimited = (&Event{MaxAttendees: 50, CurrentAttendees: 55}).SpotsRemaining()
	assert.Equal(t, 0, spots, "overshoot clamps at zero")
	assert.False(t, unlimited)

	_, unlimited = (&Event{MaxAttendees: 0, CurrentAttendees: 99}).SpotsRemaining()
	assert.True(t, unlimited)
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	future := &Event{Date: now.Add(time.Hour)}
	assert.True(t, future.IsUpcoming(now))

	past := &Event{Date: now.Add(-time.Hour)}
	assert.False(t, past.IsUpcoming(now))

	exact := &Event{Date: now}
	assert.False(t, exact.IsUpcoming(now), "an event starting right now is not upcoming")
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		days int
	}{
		{"later today rounds up to one", now.Add(6 * time.Hour), 1},
		{"exactly three days", now.AddDate(0, 0, 3), 3},
		{"partial fourth day rounds up", now.AddDate(0, 0, 3).Add(time.Hour), 4},
		{"same instant", now, 0},
		{"yesterday", now.AddDate(0, 0, -1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{Date: tt.date}
			assert.Equal(t, tt.days, e.DaysUntil(now))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := NewEvent("Community Cleanup", "Riverside park cleanup day", time.Now().AddDate(0, 1, 0), "Riverside Park", "community", 30)
	assert.NoError(t, valid.Validate())

	missingTitle := NewEvent("", "desc", time.Now(), "", "", 0)
	assert.Error(t, missingTitle.Validate())

	missingDate := &Event{Title: "t", Description: "d"}
	assert.Error(t, missingDate.Validate())

	negativeCounter := &Event{Title: "t", Description: "d", Date: time.Now(), CurrentAttendees: -1}
	assert.Error(t, negativeCounter.Validate())
}
