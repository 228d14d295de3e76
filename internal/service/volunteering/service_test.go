package volunteering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository/repositorytest"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/event"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/clock"
)

type fixture struct {
	store  *repositorytest.ApplicationStore
	outbox *repositorytest.OutboxStore
	svc    *Service
	app    *model.Application
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	store := repositorytest.NewApplicationStore()
	outbox := repositorytest.NewOutboxStore()

	app := &model.Application{
		Base:          model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OpportunityID: uuid.New(),
		CampaignID:    uuid.New(),
		VolunteerID:   uuid.New(),
		Status:        model.StatusAccepted,
		VolunteeringRecord: model.VolunteeringRecord{
			CompletionStatus: model.CompletionInProgress,
		},
	}
	require.NoError(t, store.Create(context.Background(), app))

	return &fixture{
		store:  store,
		outbox: outbox,
		svc:    NewService(store, event.NewService(outbox, nil), clock.Fixed(now), nil),
		app:    app,
	}
}

func TestLogHoursAccumulates(t *testing.T) {
	now := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
	f := newFixture(t, now)

	day1 := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	_, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
		Date: day1, Hours: 3.5, Activity: "food bank sorting",
	}, nil)
	require.NoError(t, err)

	got, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
		Date: day2, Hours: 2.0, Activity: "delivery run",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 5.5, got.VolunteeringRecord.TotalHours)
	require.Len(t, got.VolunteeringRecord.HoursLogged, 2)
	assert.Equal(t, "food bank sorting", got.VolunteeringRecord.HoursLogged[0].Activity)
	assert.Equal(t, "delivery run", got.VolunteeringRecord.HoursLogged[1].Activity)
	assert.Nil(t, got.VolunteeringRecord.HoursLogged[0].VerifiedBy)

	events := f.outbox.Events()
	require.Len(t, events, 2)
	assert.Equal(t, model.EventHoursLogged, events[0].EventType)
}

func TestLogHoursAcceptsBoundaryValues(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	// 0 and 24 are both inside the allowed range.
	_, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
		Date: time.Now(), Hours: 0, Activity: "orientation, no shift worked",
	}, nil)
	require.NoError(t, err)

	got, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
		Date: time.Now(), Hours: 24, Activity: "disaster relief overnight",
	}, nil)
	require.NoError(t, err)

	require.Len(t, got.VolunteeringRecord.HoursLogged, 2)
	assert.Equal(t, 24.0, got.VolunteeringRecord.TotalHours)
}

func TestLogHoursRejectsOutOfBounds(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	for _, hours := range []float64{-1, 24.5, 25} {
		_, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
			Date: time.Now(), Hours: hours, Activity: "anything",
		}, nil)
		require.Error(t, err, "hours=%v", hours)
		assert.Contains(t, err.Error(), "between 0 and 24")
	}

	// A rejected entry must not touch the ledger or the total.
	stored, err := f.store.Get(context.Background(), f.app.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.VolunteeringRecord.HoursLogged)
	assert.Equal(t, 0.0, stored.VolunteeringRecord.TotalHours)
	assert.Empty(t, f.outbox.Events())
}

func TestLogHoursRequiresActivity(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	_, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
		Date: time.Now(), Hours: 2,
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity description is required")
}

func TestLogHoursVerifierStampsEntry(t *testing.T) {
	now := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	verifier := uuid.New()

	got, err := f.svc.LogHours(context.Background(), f.app.ID, &model.LogHoursRequest{
		Date: now, Hours: 4, Activity: "event setup",
	}, &verifier)
	require.NoError(t, err)

	require.Len(t, got.VolunteeringRecord.HoursLogged, 1)
	entry := got.VolunteeringRecord.HoursLogged[0]
	require.NotNil(t, entry.VerifiedBy)
	assert.Equal(t, verifier, *entry.VerifiedBy)
	require.NotNil(t, entry.VerifiedAt)
	assert.Equal(t, now, *entry.VerifiedAt)
}

func TestUpdateRecord(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	completed := model.CompletionCompleted
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 2, 0)

	got, err := f.svc.UpdateRecord(context.Background(), f.app.ID, &model.UpdateVolunteeringRequest{
		StartDate:        &start,
		EndDate:          &end,
		CompletionStatus: &completed,
		Performance: &model.PerformanceRatings{
			Reliability: 5, Communication: 4, Teamwork: 5,
			Initiative: 4, QualityOfWork: 5, Overall: 5,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.CompletionCompleted, got.VolunteeringRecord.CompletionStatus)
	require.NotNil(t, got.VolunteeringRecord.Performance)
	assert.Equal(t, 5, got.VolunteeringRecord.Performance.Overall)
	assert.Equal(t, &start, got.VolunteeringRecord.StartDate)
}

func TestUpdateRecordValidation(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	bogus := model.CompletionStatus("finished")
	_, err := f.svc.UpdateRecord(context.Background(), f.app.ID, &model.UpdateVolunteeringRequest{
		CompletionStatus: &bogus,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown completion status")

	_, err = f.svc.UpdateRecord(context.Background(), f.app.ID, &model.UpdateVolunteeringRequest{
		Performance: &model.PerformanceRatings{Reliability: 0, Communication: 3, Teamwork: 3, Initiative: 3, QualityOfWork: 3, Overall: 3},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reliability rating must be between 1 and 5")
}

func TestSubmitFeedbackBothSides(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	f := newFixture(t, now)

	_, err := f.svc.SubmitVolunteerFeedback(context.Background(), f.app.ID, &model.FeedbackRequest{
		Rating: 5, Comments: "great team",
	})
	require.NoError(t, err)

	got, err := f.svc.SubmitOrganizationFeedback(context.Background(), f.app.ID, &model.FeedbackRequest{
		Rating: 4, Comments: "reliable volunteer",
	})
	require.NoError(t, err)

	require.NotNil(t, got.VolunteeringRecord.VolunteerFeedback)
	assert.Equal(t, 5, got.VolunteeringRecord.VolunteerFeedback.Rating)
	require.NotNil(t, got.VolunteeringRecord.OrganizationFeedback)
	assert.Equal(t, 4, got.VolunteeringRecord.OrganizationFeedback.Rating)
	assert.Equal(t, now, got.VolunteeringRecord.OrganizationFeedback.SubmittedAt)
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	for _, rating := range []int{0, 6} {
		_, err := f.svc.SubmitVolunteerFeedback(context.Background(), f.app.ID, &model.FeedbackRequest{Rating: rating})
		require.Error(t, err, "rating=%d", rating)
		assert.Contains(t, err.Error(), "between 1 and 5")
	}
}
