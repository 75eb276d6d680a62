package moderation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStringRoundTrip(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusContacted, StatusInvoiceSent, StatusCompleted}

	for _, s := range all {
		parsed, ok := StatusFromString(s.String())
		require.True(t, ok, "parsing %q", s.String())
		assert.Equal(t, s, parsed)
	}

	_, ok := StatusFromString("archived")
	assert.False(t, ok)
}

func TestStatusJSON(t *testing.T) {
	data, err := json.Marshal(StatusInvoiceSent)
	require.NoError(t, err)
	assert.Equal(t, `"invoice_sent"`, string(data))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"contacted"`), &s))
	assert.Equal(t, StatusContacted, s)

	assert.Error(t, json.Unmarshal([]byte(`"archived"`), &s))
}

func TestStatusScanValue(t *testing.T) {
	var s Status
	require.NoError(t, s.Scan("completed"))
	assert.Equal(t, StatusCompleted, s)

	require.NoError(t, s.Scan([]byte("rejected")))
	assert.Equal(t, StatusRejected, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StatusPending, s, "null columns default to pending")

	assert.Error(t, s.Scan("archived"))
	assert.Error(t, s.Scan(42))

	v, err := StatusApproved.Value()
	require.NoError(t, err)
	assert.Equal(t, "approved", v)
}

func TestKindStatuses(t *testing.T) {
	tests := []struct {
		kind Kind
		want []Status
	}{
		{KindTestimonial, []Status{StatusPending, StatusApproved}},
		{KindEventRegistration, []Status{StatusPending, StatusApproved, StatusRejected}},
		{KindVolunteerApplication, []Status{StatusPending, StatusContacted, StatusApproved, StatusRejected}},
		{KindDonationInterest, []Status{StatusPending, StatusContacted, StatusInvoiceSent, StatusCompleted, StatusRejected}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Statuses())
		})
	}
}

func TestKindValidate(t *testing.T) {
	// Every declared status is reachable from any other, including itself.
	for _, kind := range []Kind{KindTestimonial, KindEventRegistration, KindVolunteerApplication, KindDonationInterest} {
		for _, target := range kind.Statuses() {
			assert.NoError(t, kind.Validate(target), "%s -> %s", kind, target)
		}
	}

	err := KindTestimonial.Validate(StatusRejected)
	require.Error(t, err, "testimonials have no rejected status")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	err = KindEventRegistration.Validate(StatusInvoiceSent)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestKindStatusNames(t *testing.T) {
	assert.Equal(t, []string{"pending", "approved"}, KindTestimonial.StatusNames())
	assert.Equal(t,
		[]string{"pending", "contacted", "invoice_sent", "completed", "rejected"},
		KindDonationInterest.StatusNames())
}
