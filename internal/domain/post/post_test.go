package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Spring Fundraiser Recap", "spring-fundraiser-recap"},
		{"  Volunteers: Thank You!  ", "volunteers-thank-you"},
		{"2026 Annual Report", "2026-annual-report"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "slugify %q", tt.title)
	}
}

func TestPublishStampsOnce(t *testing.T) {
	p := &Post{Title: "Spring Recap", Body: "body"}
	first := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	p.Publish(first)
	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, first, *p.PublishedAt)

	p.Unpublish()
	assert.False(t, p.Published)
	assert.NotNil(t, p.PublishedAt, "unpublishing keeps the original timestamp")

	p.Publish(later)
	assert.True(t, p.Published)
	assert.Equal(t, first, *p.PublishedAt, "republishing does not move the original publication date")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Post{Title: "t", Body: "b"}).Validate())
	assert.Error(t, (&Post{Body: "b"}).Validate())
	assert.Error(t, (&Post{Title: "t"}).Validate())
}
