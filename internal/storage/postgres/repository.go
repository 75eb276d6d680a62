package postgres

import (
	"errors"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/admin"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/gallery"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/post"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/testimonial"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrCapacityExceeded is returned when a registration is attempted against
// a fully booked event.
var ErrCapacityExceeded = errors.New("event is fully booked")

// ListFilter narrows admin list queries. Status is pushed down to the
// query; Search is matched case-insensitively over the kind's contact
// fields.
type ListFilter struct {
	Status *moderation.Status
	Search string
}

// EventRepository define los metodos para interactuar con los eventos en la DB.
type EventRepository interface {
	Create(event *event.Event) error
	GetByID(id string) (*event.Event, error)
	GetAll() ([]*event.Event, error)
	GetUpcoming(limit int) ([]*event.Event, error)
	Update(event *event.Event) error
	Delete(id string) error
}

// RegistrationRepository define los métodos para interactuar con las inscripciones.
// Register and Delete also maintain the owning event's attendee counter;
// both run inside a single database transaction.
type RegistrationRepository interface {
	Register(eventID string, registrant registration.Registrant) (*registration.Registration, error)
	GetByID(id string) (*registration.Registration, error)
	GetByEventID(eventID string) ([]*registration.Registration, error)
	List(filter ListFilter) ([]*registration.Registration, error)
	UpdateStatus(id string, status moderation.Status) (*registration.Registration, error)
	Delete(id string) error
}

// TestimonialRepository define los métodos para interactuar con los testimonios.
type TestimonialRepository interface {
	Create(t *testimonial.Testimonial) error
	GetByID(id string) (*testimonial.Testimonial, error)
	List(filter ListFilter) ([]*testimonial.Testimonial, error)
	UpdateStatus(id string, status moderation.Status) (*testimonial.Testimonial, error)
	Delete(id string) error
}

// VolunteerRepository define los métodos para interactuar con las solicitudes de voluntariado.
type VolunteerRepository interface {
	Create(a *volunteer.Application) error
	GetByID(id string) (*volunteer.Application, error)
	List(filter ListFilter) ([]*volunteer.Application, error)
	UpdateStatus(id string, status moderation.Status) (*volunteer.Application, error)
	Delete(id string) error
}

// DonationRepository define los métodos para interactuar con los intereses de donación.
type DonationRepository interface {
	Create(i *donation.Interest) error
	GetByID(id string) (*donation.Interest, error)
	List(filter ListFilter) ([]*donation.Interest, error)
	UpdateStatus(id string, status moderation.Status) (*donation.Interest, error)
	Delete(id string) error
}

// PostRepository define los métodos para interactuar con las entradas del blog.
type PostRepository interface {
	Create(p *post.Post) error
	GetByID(id string) (*post.Post, error)
	GetBySlug(slug string) (*post.Post, error)
	GetAll() ([]*post.Post, error)
	GetPublished(limit int) ([]*post.Post, error)
	Update(p *post.Post) error
	Delete(id string) error
}

// GalleryRepository define los métodos para interactuar con la galería.
type GalleryRepository interface {
	Create(img *gallery.Image) error
	GetByID(id string) (*gallery.Image, error)
	GetAll() ([]*gallery.Image, error)
	Delete(id string) error
}

// AdminRepository define los métodos para interactuar con las cuentas del personal.
type AdminRepository interface {
	Create(a *admin.Account) error
	GetByID(id string) (*admin.Account, error)
	GetByEmail(email string) (*admin.Account, error)
	Update(a *admin.Account) error
}
