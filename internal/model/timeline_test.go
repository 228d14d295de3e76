package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineStampOnce(t *testing.T) {
	tl := Timeline{}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	assert.True(t, tl.Stamp(StatusShortlisted, first))
	require.NotNil(t, tl.ShortlistedAt)
	assert.Equal(t, first, *tl.ShortlistedAt)

	// Re-entering the same status must not move the stamp.
	assert.False(t, tl.Stamp(StatusShortlisted, second))
	assert.Equal(t, first, *tl.ShortlistedAt)
}

func TestTimelineStampAllStatuses(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	statuses := []ApplicationStatus{
		StatusSubmitted,
		StatusUnderReview,
		StatusShortlisted,
		StatusInterviewScheduled,
		StatusAccepted,
		StatusRejected,
		StatusWithdrawn,
	}

	tl := Timeline{}
	for _, s := range statuses {
		assert.True(t, tl.Stamp(s, now), "status %s", s)
		require.NotNil(t, tl.StampedAt(s), "status %s", s)
		assert.Equal(t, now, *tl.StampedAt(s), "status %s", s)
	}
}

func TestTimelineUnknownStatus(t *testing.T) {
	tl := Timeline{}
	assert.False(t, tl.Stamp(ApplicationStatus("bogus"), time.Now()))
	assert.Nil(t, tl.StampedAt(ApplicationStatus("bogus")))
}

func TestApplicationIsPending(t *testing.T) {
	tests := []struct {
		status  ApplicationStatus
		pending bool
	}{
		{StatusSubmitted, true},
		{StatusUnderReview, true},
		{StatusShortlisted, true},
		{StatusInterviewScheduled, true},
		{StatusAccepted, false},
		{StatusRejected, false},
		{StatusWithdrawn, false},
	}
	for _, tt := range tests {
		app := Application{Status: tt.status}
		assert.Equal(t, tt.pending, app.IsPending(), "status %s", tt.status)
	}
}

func TestApplicationAgeDays(t *testing.T) {
	submitted := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	app := Application{}
	assert.Equal(t, 0, app.AgeDays(submitted))

	app.Timeline.SubmittedAt = &submitted
	assert.Equal(t, 0, app.AgeDays(submitted.Add(12*time.Hour)))
	assert.Equal(t, 3, app.AgeDays(submitted.Add(3*24*time.Hour)))
}

func TestApplicationIsInterviewOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	app := Application{Status: StatusInterviewScheduled}
	assert.False(t, app.IsInterviewOverdue(now), "no date set")

	app.Interview.ScheduledDate = &past
	assert.True(t, app.IsInterviewOverdue(now))

	app.Interview.ScheduledDate = &future
	assert.False(t, app.IsInterviewOverdue(now))

	app.Interview.ScheduledDate = &past
	app.Status = StatusAccepted
	assert.False(t, app.IsInterviewOverdue(now), "moved past interview stage")
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusSubmitted))
	assert.True(t, ValidStatus(StatusWithdrawn))
	assert.False(t, ValidStatus(ApplicationStatus("approved")))
	assert.False(t, ValidStatus(ApplicationStatus("")))
}
