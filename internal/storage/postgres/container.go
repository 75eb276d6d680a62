package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/config"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// Container bundles all repositories behind one initialization point
type Container struct {
	db               *gorm.DB
	log              *log.Logger
	eventRepo        EventRepository
	registrationRepo RegistrationRepository
	testimonialRepo  TestimonialRepository
	volunteerRepo    VolunteerRepository
	donationRepo     DonationRepository
	postRepo         PostRepository
	galleryRepo      GalleryRepository
	adminRepo        AdminRepository
}

// NewContainer creates a new repository container with all repositories initialized
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container with an existing database connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:               db,
		log:              logger.Repository("postgres_container"),
		eventRepo:        NewPostgresEventRepository(db),
		registrationRepo: NewPostgresRegistrationRepository(db),
		testimonialRepo:  NewPostgresTestimonialRepository(db),
		volunteerRepo:    NewPostgresVolunteerRepository(db),
		donationRepo:     NewPostgresDonationRepository(db),
		postRepo:         NewPostgresPostRepository(db),
		galleryRepo:      NewPostgresGalleryRepository(db),
		adminRepo:        NewPostgresAdminRepository(db),
	}
}

// Events returns the event repository
func (c *Container) Events() EventRepository {
	return c.eventRepo
}

// Registrations returns the registration repository
func (c *Container) Registrations() RegistrationRepository {
	return c.registrationRepo
}

// Testimonials returns the testimonial repository
func (c *Container) Testimonials() TestimonialRepository {
	return c.testimonialRepo
}

// Volunteers returns the volunteer application repository
func (c *Container) Volunteers() VolunteerRepository {
	return c.volunteerRepo
}

// Donations returns the donation interest repository
func (c *Container) Donations() DonationRepository {
	return c.donationRepo
}

// Posts returns the blog post repository
func (c *Container) Posts() PostRepository {
	return c.postRepo
}

// Gallery returns the gallery repository
func (c *Container) Gallery() GalleryRepository {
	return c.galleryRepo
}

// Admins returns the admin account repository
func (c *Container) Admins() AdminRepository {
	return c.adminRepo
}

// DB returns the underlying database handle
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Health performs a health check on the database connection
func (c *Container) Health() error {
	c.log.Debug("Performing container health check...")

	if err := HealthCheck(c.db); err != nil {
		c.log.Error("Database health check failed", "error", err)
		return fmt.Errorf("database health check failed: %w", err)
	}

	return nil
}
