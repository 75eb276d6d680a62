package migrations

import (
	"github.com/brightpath-foundation/brightpath-api/internal/domain/admin"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/gallery"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/post"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/testimonial"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
)

// AllModels returns every model managed by AutoMigrate, in dependency order
func AllModels() []interface{} {
	return []interface{}{
		&admin.Account{},
		&event.Event{},
		&registration.Registration{},
		&testimonial.Testimonial{},
		&volunteer.Application{},
		&donation.Interest{},
		&post.Post{},
		&gallery.Image{},
	}
}
