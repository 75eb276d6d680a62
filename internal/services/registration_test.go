package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

func newRegistrationFixture(t *testing.T, maxAttendees int) (*RegistrationService, *memStore, *event.Event) {
	t.Helper()

	store := newMemStore()
	eventRepo := &memEventRepo{store: store}
	registrationRepo := &memRegistrationRepo{store: store}

	ev := event.NewEvent("Annual Gala", "Fundraising dinner", time.Now().AddDate(0, 2, 0), "City Hall", "fundraiser", maxAttendees)
	require.NoError(t, eventRepo.Create(ev))

	return NewRegistrationService(registrationRepo, eventRepo), store, ev
}

func TestRegisterCreatesPendingRegistration(t *testing.T) {
	svc, _, ev := newRegistrationFixture(t, 10)

	reg, err := svc.Register(ev.ID.String(), registration.Registrant{
		Name:  "Alex Morgan",
		Email: "alex@example.org",
	})
	require.NoError(t, err)

	assert.Equal(t, moderation.StatusPending, reg.Status)
	assert.Equal(t, ev.ID, reg.EventID)
	assert.Equal(t, "Annual Gala", reg.EventTitle)
	assert.Equal(t, 1, ev.CurrentAttendees)
}

func TestRegisterRejectsInvalidRegistrant(t *testing.T) {
	svc, store, ev := newRegistrationFixture(t, 10)

	_, err := svc.Register(ev.ID.String(), registration.Registrant{Name: "", Email: "a@b.org"})
	assert.Error(t, err)

	_, err = svc.Register(ev.ID.String(), registration.Registrant{Name: "Alex Morgan", Email: "not-an-email"})
	assert.Error(t, err)

	assert.Empty(t, store.registrations, "failed validation must not create rows")
	assert.Equal(t, 0, ev.CurrentAttendees, "failed validation must not touch the counter")
}

func TestRegisterEnforcesCapacity(t *testing.T) {
	svc, _, ev := newRegistrationFixture(t, 2)

	for i, email := range []string{"one@example.org", "two@example.org"} {
		_, err := svc.Register(ev.ID.String(), registration.Registrant{Name: "Guest Person", Email: email})
		require.NoError(t, err, "registration %d should fit", i+1)
	}

	_, err := svc.Register(ev.ID.String(), registration.Registrant{Name: "Late Comer", Email: "late@example.org"})
	assert.ErrorIs(t, err, postgres.ErrCapacityExceeded)
	assert.Equal(t, 2, ev.CurrentAttendees, "a refused registration must not bump the counter")
}

func TestRegisterUncappedEvent(t *testing.T) {
	svc, _, ev := newRegistrationFixture(t, 0)

	for i := 0; i < 25; i++ {
		_, err := svc.Register(ev.ID.String(), registration.Registrant{Name: "Guest Person", Email: "guest@example.org"})
		require.NoError(t, err)
	}
	assert.Equal(t, 25, ev.CurrentAttendees)
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc, _, _ := newRegistrationFixture(t, 10)

	_, err := svc.Register("b7f9a4c4-0000-4000-8000-000000000000", registration.Registrant{Name: "Alex Morgan", Email: "alex@example.org"})
	assert.ErrorIs(t, err, postgres.ErrNotFound)
}

func TestAvailability(t *testing.T) {
	svc, _, ev := newRegistrationFixture(t, 3)

	_, err := svc.Register(ev.ID.String(), registration.Registrant{Name: "Alex Morgan", Email: "alex@example.org"})
	require.NoError(t, err)

	avail, err := svc.Availability(ev.ID.String())
	require.NoError(t, err)
	assert.Equal(t, ev.ID.String(), avail.EventID)
	assert.Equal(t, 2, avail.SpotsRemaining)
	assert.False(t, avail.Unlimited)
	assert.False(t, avail.Full)
}

func TestAvailabilityUncapped(t *testing.T) {
	svc, _, ev := newRegistrationFixture(t, 0)

	avail, err := svc.Availability(ev.ID.String())
	require.NoError(t, err)
	assert.True(t, avail.Unlimited)
	assert.False(t, avail.Full)
}

func TestDeleteRegistrationReleasesSpot(t *testing.T) {
	svc, store, ev := newRegistrationFixture(t, 1)
	registrationRepo := &memRegistrationRepo{store: store}

	reg, err := svc.Register(ev.ID.String(), registration.Registrant{Name: "Alex Morgan", Email: "alex@example.org"})
	require.NoError(t, err)

	_, err = svc.Register(ev.ID.String(), registration.Registrant{Name: "Wait Lister", Email: "wait@example.org"})
	require.ErrorIs(t, err, postgres.ErrCapacityExceeded)

	require.NoError(t, registrationRepo.Delete(reg.ID.String()))
	assert.Equal(t, 0, ev.CurrentAttendees)

	_, err = svc.Register(ev.ID.String(), registration.Registrant{Name: "Wait Lister", Email: "wait@example.org"})
	assert.NoError(t, err, "a freed spot accepts the next registrant")
}
