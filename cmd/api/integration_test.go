//go:build integration
// +build integration

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-foundation/brightpath-api/internal/config"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

// Integration tests that require a real PostgreSQL database
// Run with: go test -tags=integration

func loadTestConfig() *config.Config {
	cfg := config.Load()
	if testDB := os.Getenv("TEST_DB_NAME"); testDB != "" {
		cfg.DB.Name = testDB
	}
	return cfg
}

func TestDatabaseConnection(t *testing.T) {
	cfg := loadTestConfig()

	db, err := postgres.Connect(cfg)
	assert.NoError(t, err, "Should be able to connect to test database")

	if err == nil {
		sqlDB, err := db.DB()
		assert.NoError(t, err)

		err = sqlDB.Ping()
		assert.NoError(t, err, "Should be able to ping the database")

		sqlDB.Close()
	}
}

func TestDatabaseMigration(t *testing.T) {
	cfg := loadTestConfig()

	db, err := postgres.Connect(cfg)
	assert.NoError(t, err, "Should be able to connect to test database")

	if err == nil {
		err = postgres.AutoMigrate(db)
		assert.NoError(t, err, "Should be able to run migrations")

		sqlDB, _ := db.DB()
		sqlDB.Close()
	}
}

func TestRegistrationCapacityAgainstDatabase(t *testing.T) {
	cfg := loadTestConfig()

	db, err := postgres.Connect(cfg)
	require.NoError(t, err, "Should be able to connect to test database")
	require.NoError(t, postgres.AutoMigrate(db))

	repos := postgres.NewContainerWithDB(db)

	ev := event.NewEvent("Capacity Check", "Integration fixture", time.Now().AddDate(0, 1, 0), "", "", 1)
	require.NoError(t, repos.Events().Create(ev))
	defer repos.Events().Delete(ev.ID.String())

	_, err = repos.Registrations().Register(ev.ID.String(), registration.Registrant{Name: "First Guest", Email: "first@example.org"})
	assert.NoError(t, err, "First registration should fit")

	_, err = repos.Registrations().Register(ev.ID.String(), registration.Registrant{Name: "Second Guest", Email: "second@example.org"})
	assert.ErrorIs(t, err, postgres.ErrCapacityExceeded, "Second registration should be refused")

	sqlDB, _ := db.DB()
	sqlDB.Close()
}
