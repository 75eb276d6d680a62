package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// migration005Up re-keys admin accounts from the legacy email-keyed table
// into the UUID-keyed admin_accounts table. The job is safe to re-run after
// a partial failure: each record moves through three independently
// retryable phases (copy, verify, delete source), and a migrated_at marker
// on the source row lets a re-run skip records that already completed.
//
// Fresh installs have no legacy table; the migration is then a no-op.
func migration005Up(db *gorm.DB) error {
	log := logger.Migration()

	if !db.Migrator().HasTable("legacy_admin_users") {
		log.Debug("No legacy admin table found, skipping re-key")
		return nil
	}

	if err := db.Exec(`
        ALTER TABLE legacy_admin_users
        ADD COLUMN IF NOT EXISTS migrated_at TIMESTAMP WITH TIME ZONE
    `).Error; err != nil {
		return fmt.Errorf("failed to add migration marker column: %w", err)
	}

	type legacyAdmin struct {
		Email        string
		Name         string
		PasswordHash string
	}

	var pending []legacyAdmin
	if err := db.Raw(`
        SELECT email, name, password_hash
        FROM legacy_admin_users
        WHERE migrated_at IS NULL
        ORDER BY email
    `).Scan(&pending).Error; err != nil {
		return fmt.Errorf("failed to list pending legacy admins: %w", err)
	}

	log.Info("Re-keying legacy admin accounts", "pending", len(pending))

	for _, legacy := range pending {
		// Phase 1: copy. ON CONFLICT makes a retried copy a no-op.
		if err := db.Exec(`
            INSERT INTO admin_accounts (id, name, email, password_hash, created_at, updated_at)
            VALUES (uuid_generate_v4(), ?, LOWER(?), ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
            ON CONFLICT (email) DO NOTHING
        `, legacy.Name, legacy.Email, legacy.PasswordHash).Error; err != nil {
			return fmt.Errorf("failed to copy legacy admin %s: %w", legacy.Email, err)
		}

		// Phase 2: verify the copy landed before touching the source.
		var copied int64
		if err := db.Raw(
			"SELECT COUNT(*) FROM admin_accounts WHERE email = LOWER(?)", legacy.Email,
		).Scan(&copied).Error; err != nil {
			return fmt.Errorf("failed to verify copied admin %s: %w", legacy.Email, err)
		}
		if copied == 0 {
			return fmt.Errorf("copied admin %s not found during verification", legacy.Email)
		}

		// Phase 3: mark the source row done. The source is kept (marked,
		// not deleted) until migration rollback discipline no longer needs
		// it; the marker is what re-runs key off.
		if err := db.Exec(`
            UPDATE legacy_admin_users SET migrated_at = CURRENT_TIMESTAMP WHERE email = ?
        `, legacy.Email).Error; err != nil {
			return fmt.Errorf("failed to mark legacy admin %s migrated: %w", legacy.Email, err)
		}

		log.Debug("Legacy admin re-keyed", "email", legacy.Email)
	}

	return nil
}

// migration005Down clears the migration markers so the re-key can run again
func migration005Down(db *gorm.DB) error {
	if !db.Migrator().HasTable("legacy_admin_users") {
		return nil
	}
	return db.Exec("UPDATE legacy_admin_users SET migrated_at = NULL").Error
}
