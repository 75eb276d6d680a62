package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

func newModerationFixture() (*ModerationService, *memStore) {
	store := newMemStore()
	svc := NewModerationService(
		&memTestimonialRepo{store: store},
		&memRegistrationRepo{store: store},
		&memVolunteerRepo{store: store},
		&memDonationRepo{store: store},
	)
	return svc, store
}

func TestSubmitTestimonialStartsPending(t *testing.T) {
	svc, _ := newModerationFixture()

	tm, err := svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "Volunteer", "A wonderful organization", 5)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, tm.Status)
}

func TestSubmitTestimonialRejectsInvalidInput(t *testing.T) {
	svc, store := newModerationFixture()

	_, err := svc.SubmitTestimonial("", "jordan@example.org", "", "quote", 5)
	assert.Error(t, err)

	_, err = svc.SubmitTestimonial("Jordan Lee", "no-at-sign", "", "quote", 5)
	assert.Error(t, err)

	_, err = svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "", "quote", 6)
	assert.Error(t, err, "rating above five stars")

	_, err = svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "", "quote", 0)
	assert.Error(t, err, "rating below one star")

	assert.Empty(t, store.testimonials)
}

func TestTestimonialApprovalRoundTrip(t *testing.T) {
	svc, _ := newModerationFixture()

	tm, err := svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "Volunteer", "A wonderful organization", 5)
	require.NoError(t, err)

	tm, err = svc.TransitionTestimonial(tm.ID.String(), moderation.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusApproved, tm.Status)

	// Staff can pull an approved testimonial back for another look.
	tm, err = svc.TransitionTestimonial(tm.ID.String(), moderation.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, tm.Status)
}

func TestTestimonialRejectsForeignStatus(t *testing.T) {
	svc, _ := newModerationFixture()

	tm, err := svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "", "quote text", 4)
	require.NoError(t, err)

	_, err = svc.TransitionTestimonial(tm.ID.String(), moderation.StatusRejected)
	assert.ErrorIs(t, err, moderation.ErrUnknownStatus, "testimonials are approved or pending, never rejected")

	assert.Equal(t, moderation.StatusPending, tm.Status, "failed transition leaves the record untouched")
}

func TestApprovedListTracksTransitions(t *testing.T) {
	svc, store := newModerationFixture()
	repo := &memTestimonialRepo{store: store}
	approved := moderation.StatusApproved

	tm, err := svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "Volunteer", "A wonderful organization", 5)
	require.NoError(t, err)

	listed, err := repo.List(postgres.ListFilter{Status: &approved})
	require.NoError(t, err)
	assert.Empty(t, listed, "a pending testimonial is not publicly visible")

	_, err = svc.TransitionTestimonial(tm.ID.String(), moderation.StatusApproved)
	require.NoError(t, err)

	listed, err = repo.List(postgres.ListFilter{Status: &approved})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, tm.ID, listed[0].ID)

	// Un-approving pulls it back out of the approved list.
	_, err = svc.TransitionTestimonial(tm.ID.String(), moderation.StatusPending)
	require.NoError(t, err)

	listed, err = repo.List(postgres.ListFilter{Status: &approved})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListStatusFilter(t *testing.T) {
	svc, store := newModerationFixture()
	repo := &memVolunteerRepo{store: store}

	first := volunteer.New("Sam Rivera", "sam@example.org", "", "", nil, "", "")
	second := volunteer.New("Pat Ortiz", "pat@example.org", "", "", nil, "", "")
	require.NoError(t, svc.SubmitVolunteerApplication(first))
	require.NoError(t, svc.SubmitVolunteerApplication(second))

	_, err := svc.TransitionVolunteerApplication(first.ID.String(), moderation.StatusContacted)
	require.NoError(t, err)

	all, err := repo.List(postgres.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "no filter returns everything")

	contacted := moderation.StatusContacted
	listed, err := repo.List(postgres.ListFilter{Status: &contacted})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, first.ID, listed[0].ID)

	pending := moderation.StatusPending
	listed, err = repo.List(postgres.ListFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, second.ID, listed[0].ID)
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	svc, store := newModerationFixture()
	repo := &memVolunteerRepo{store: store}

	app := volunteer.New("Jordan Lee", "Jordan.Lee@Example.org", "", "Riverside Neighbors", nil, "", "")
	other := volunteer.New("Pat Ortiz", "pat@example.org", "", "", nil, "", "")
	require.NoError(t, svc.SubmitVolunteerApplication(app))
	require.NoError(t, svc.SubmitVolunteerApplication(other))

	tests := []struct {
		name  string
		query string
	}{
		{"mixed-case name", "jORDAN"},
		{"email fragment", "LEE@example"},
		{"organization fragment", "riverside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listed, err := repo.List(postgres.ListFilter{Search: tt.query})
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, app.ID, listed[0].ID)
		})
	}

	listed, err := repo.List(postgres.ListFilter{Search: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, listed)

	listed, err = repo.List(postgres.ListFilter{Search: "  "})
	require.NoError(t, err)
	assert.Len(t, listed, 2, "blank search matches everything")
}

func TestListCombinesStatusAndSearch(t *testing.T) {
	svc, store := newModerationFixture()
	repo := &memVolunteerRepo{store: store}

	match := volunteer.New("Jordan Lee", "jordan@example.org", "", "", nil, "", "")
	sameName := volunteer.New("Jordan Cruz", "cruz@example.org", "", "", nil, "", "")
	require.NoError(t, svc.SubmitVolunteerApplication(match))
	require.NoError(t, svc.SubmitVolunteerApplication(sameName))

	_, err := svc.TransitionVolunteerApplication(match.ID.String(), moderation.StatusApproved)
	require.NoError(t, err)

	approved := moderation.StatusApproved
	listed, err := repo.List(postgres.ListFilter{Status: &approved, Search: "jordan"})
	require.NoError(t, err)
	require.Len(t, listed, 1, "both filters must hold at once")
	assert.Equal(t, match.ID, listed[0].ID)
}

func TestTransitionIsIdempotent(t *testing.T) {
	svc, _ := newModerationFixture()

	tm, err := svc.SubmitTestimonial("Jordan Lee", "jordan@example.org", "", "quote text", 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tm, err = svc.TransitionTestimonial(tm.ID.String(), moderation.StatusApproved)
		require.NoError(t, err, "re-applying the current status is allowed")
		assert.Equal(t, moderation.StatusApproved, tm.Status)
	}
}

func TestTransitionUnknownRecord(t *testing.T) {
	svc, _ := newModerationFixture()

	_, err := svc.TransitionTestimonial("b7f9a4c4-0000-4000-8000-000000000000", moderation.StatusApproved)
	assert.ErrorIs(t, err, postgres.ErrNotFound)

	_, err = svc.TransitionTestimonial("not-a-uuid", moderation.StatusApproved)
	assert.ErrorIs(t, err, postgres.ErrNotFound)
}

func TestVolunteerLifecycle(t *testing.T) {
	svc, _ := newModerationFixture()

	app := volunteer.New("Sam Rivera", "sam@example.org", "", "", []string{"tutoring"}, "weekends", "")
	require.NoError(t, svc.SubmitVolunteerApplication(app))
	assert.Equal(t, moderation.StatusPending, app.Status)

	for _, target := range []moderation.Status{moderation.StatusContacted, moderation.StatusApproved, moderation.StatusRejected} {
		got, err := svc.TransitionVolunteerApplication(app.ID.String(), target)
		require.NoError(t, err)
		assert.Equal(t, target, got.Status)
	}

	_, err := svc.TransitionVolunteerApplication(app.ID.String(), moderation.StatusInvoiceSent)
	assert.ErrorIs(t, err, moderation.ErrUnknownStatus)
}

func TestDonationLifecycle(t *testing.T) {
	svc, _ := newModerationFixture()

	interest := donation.New("Casey Kim", "casey@example.org", "", "Kim Family Fund", 250_00, "usd", "one_time", "")
	require.NoError(t, svc.SubmitDonationInterest(interest))
	assert.Equal(t, moderation.StatusPending, interest.Status)
	assert.Equal(t, "USD", interest.Currency)

	// The full happy path: contact, invoice, completion.
	for _, target := range []moderation.Status{moderation.StatusContacted, moderation.StatusInvoiceSent, moderation.StatusCompleted} {
		got, err := svc.TransitionDonationInterest(interest.ID.String(), target)
		require.NoError(t, err)
		assert.Equal(t, target, got.Status)
	}

	// A completed interest can still be corrected back to any earlier state.
	got, err := svc.TransitionDonationInterest(interest.ID.String(), moderation.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, got.Status)

	_, err = svc.TransitionDonationInterest(interest.ID.String(), moderation.StatusApproved)
	assert.ErrorIs(t, err, moderation.ErrUnknownStatus, "donations use completed, not approved")
}

func TestRegistrationTransitionValidatesStatus(t *testing.T) {
	svc, store := newModerationFixture()
	eventRepo := &memEventRepo{store: store}
	regSvc := NewRegistrationService(&memRegistrationRepo{store: store}, eventRepo)

	ev := event.NewEvent("Winter Drive", "Coat collection kickoff", time.Now().AddDate(0, 1, 0), "Main Office", "community", 0)
	require.NoError(t, eventRepo.Create(ev))

	reg, err := regSvc.Register(ev.ID.String(), registration.Registrant{Name: "Alex Morgan", Email: "alex@example.org"})
	require.NoError(t, err)

	got, err := svc.TransitionRegistration(reg.ID.String(), moderation.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusApproved, got.Status)

	_, err = svc.TransitionRegistration(reg.ID.String(), moderation.StatusContacted)
	assert.ErrorIs(t, err, moderation.ErrUnknownStatus)
}
