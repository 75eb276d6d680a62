package migrations

import "gorm.io/gorm"

// migration003Up creates performance indexes
func migration003Up(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)",
		"CREATE INDEX IF NOT EXISTS idx_events_category ON events(category)",
		"CREATE INDEX IF NOT EXISTS idx_events_featured ON events(featured)",

		"CREATE INDEX IF NOT EXISTS idx_event_registrations_event ON event_registrations(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_event_registrations_status ON event_registrations(status)",
		"CREATE INDEX IF NOT EXISTS idx_event_registrations_email ON event_registrations(email)",
		"CREATE INDEX IF NOT EXISTS idx_event_registrations_created_at ON event_registrations(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_testimonials_status ON testimonials(status)",
		"CREATE INDEX IF NOT EXISTS idx_testimonials_created_at ON testimonials(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_volunteer_applications_status ON volunteer_applications(status)",
		"CREATE INDEX IF NOT EXISTS idx_volunteer_applications_email ON volunteer_applications(email)",

		"CREATE INDEX IF NOT EXISTS idx_donation_interests_status ON donation_interests(status)",
		"CREATE INDEX IF NOT EXISTS idx_donation_interests_email ON donation_interests(email)",

		"CREATE INDEX IF NOT EXISTS idx_posts_published ON posts(published, published_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_gallery_images_category ON gallery_images(category)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration003Down drops performance indexes
func migration003Down(db *gorm.DB) error {
	indexes := []string{
		"idx_events_date",
		"idx_events_category",
		"idx_events_featured",
		"idx_event_registrations_event",
		"idx_event_registrations_status",
		"idx_event_registrations_email",
		"idx_event_registrations_created_at",
		"idx_testimonials_status",
		"idx_testimonials_created_at",
		"idx_volunteer_applications_status",
		"idx_volunteer_applications_email",
		"idx_donation_interests_status",
		"idx_donation_interests_email",
		"idx_posts_published",
		"idx_gallery_images_category",
	}

	for _, index := range indexes {
		if err := db.Exec("DROP INDEX IF EXISTS " + index).Error; err != nil {
			return err
		}
	}

	return nil
}
