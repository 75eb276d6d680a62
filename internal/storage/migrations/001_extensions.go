package migrations

import "gorm.io/gorm"

// migration001Up creates required extensions
func migration001Up(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

// migration001Down is a no-op.
// NOTE: We don't drop the UUID extension as it might be used by other applications
func migration001Down(db *gorm.DB) error {
	return nil
}
