package migrations

import "gorm.io/gorm"

// migration004Up creates database-level integrity constraints. The capacity
// check is enforced in application code inside the registration transaction;
// these constraints are the backstop against drift from manual edits.
func migration004Up(db *gorm.DB) error {
	constraints := []string{
		`ALTER TABLE events ADD CONSTRAINT chk_events_current_attendees_non_negative
            CHECK (current_attendees >= 0)`,

		`ALTER TABLE events ADD CONSTRAINT chk_events_capacity_not_exceeded
            CHECK (max_attendees <= 0 OR current_attendees <= max_attendees)`,

		`ALTER TABLE testimonials ADD CONSTRAINT chk_testimonials_rating_range
            CHECK (rating BETWEEN 1 AND 5)`,

		`ALTER TABLE donation_interests ADD CONSTRAINT chk_donation_interests_amount_positive
            CHECK (amount > 0)`,
	}

	for _, constraintSQL := range constraints {
		if err := db.Exec(constraintSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration004Down drops the integrity constraints
func migration004Down(db *gorm.DB) error {
	drops := []string{
		"ALTER TABLE events DROP CONSTRAINT IF EXISTS chk_events_current_attendees_non_negative",
		"ALTER TABLE events DROP CONSTRAINT IF EXISTS chk_events_capacity_not_exceeded",
		"ALTER TABLE testimonials DROP CONSTRAINT IF EXISTS chk_testimonials_rating_range",
		"ALTER TABLE donation_interests DROP CONSTRAINT IF EXISTS chk_donation_interests_amount_positive",
	}

	for _, dropSQL := range drops {
		if err := db.Exec(dropSQL).Error; err != nil {
			return err
		}
	}

	return nil
}
