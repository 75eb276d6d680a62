// Package moderation defines the shared status model for publicly submitted
// records that staff review from the admin dashboard. Every submission kind
// starts at pending; each kind declares which statuses an admin may move it
// to. Any member of a kind's set is reachable from any other, so staff can
// always correct a mistaken decision.
package moderation

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownStatus is returned when a transition targets a status outside
// the kind's declared set.
var ErrUnknownStatus = errors.New("unknown status")

// Status represents the review state of a submission
type Status byte

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
	StatusContacted
	StatusInvoiceSent
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusContacted:
		return "contacted"
	case StatusInvoiceSent:
		return "invoice_sent"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Status) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid status: %s", str)
	}
	*s = status
	return nil
}

// StatusFromString converts a string to a Status
func StatusFromString(s string) (Status, bool) {
	switch s {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	case "contacted":
		return StatusContacted, true
	case "invoice_sent":
		return StatusInvoiceSent, true
	case "completed":
		return StatusCompleted, true
	default:
		return StatusPending, false
	}
}

// Scan implements the sql.Scanner interface for database deserialization
func (s *Status) Scan(value interface{}) error {
	if value == nil {
		*s = StatusPending
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Status", value)
	}

	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid status value: %s", str)
	}
	*s = status
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

// Kind identifies a moderated submission kind
type Kind byte

const (
	KindTestimonial Kind = iota
	KindEventRegistration
	KindVolunteerApplication
	KindDonationInterest
)

func (k Kind) String() string {
	switch k {
	case KindTestimonial:
		return "testimonial"
	case KindEventRegistration:
		return "event_registration"
	case KindVolunteerApplication:
		return "volunteer_application"
	case KindDonationInterest:
		return "donation_interest"
	default:
		return "unknown"
	}
}

// Statuses returns the declared status set for the kind
func (k Kind) Statuses() []Status {
	switch k {
	case KindTestimonial:
		return []Status{StatusPending, StatusApproved}
	case KindEventRegistration:
		return []Status{StatusPending, StatusApproved, StatusRejected}
	case KindVolunteerApplication:
		return []Status{StatusPending, StatusContacted, StatusApproved, StatusRejected}
	case KindDonationInterest:
		return []Status{StatusPending, StatusContacted, StatusInvoiceSent, StatusCompleted, StatusRejected}
	default:
		return nil
	}
}

// Allows checks whether the status is a member of the kind's declared set
func (k Kind) Allows(s Status) bool {
	return slices.Contains(k.Statuses(), s)
}

// Validate checks a transition target against the kind's declared set.
// There is no source-state restriction: staff may move a submission to any
// valid status, including the one it already holds.
func (k Kind) Validate(target Status) error {
	if !k.Allows(target) {
		return fmt.Errorf("%w: %q is not valid for %s", ErrUnknownStatus, target.String(), k.String())
	}
	return nil
}

// StatusNames returns the kind's status set as strings, for error payloads
func (k Kind) StatusNames() []string {
	statuses := k.Statuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}
