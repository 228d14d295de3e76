package communication

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
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
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
		Status:        model.StatusUnderReview,
	}
	require.NoError(t, store.Create(context.Background(), app))

	return &fixture{
		store:  store,
		outbox: outbox,
		svc:    NewService(store, event.NewService(outbox, nil), clock.Fixed(now)),
		app:    app,
	}
}

func TestSendMessageAppendsInOrder(t *testing.T) {
	now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	from := uuid.New()
	to := uuid.New()

	for _, subject := range []string{"first", "second", "third"} {
		_, err := f.svc.SendMessage(context.Background(), f.app.ID, from, &model.SendMessageRequest{
			To: to, Subject: subject, Body: "hello",
		})
		require.NoError(t, err)
	}

	stored, err := f.store.Get(context.Background(), f.app.ID)
	require.NoError(t, err)
	require.Len(t, stored.Communication.Messages, 3)
	assert.Equal(t, "first", stored.Communication.Messages[0].Subject)
	assert.Equal(t, "second", stored.Communication.Messages[1].Subject)
	assert.Equal(t, "third", stored.Communication.Messages[2].Subject)
	assert.Equal(t, from, stored.Communication.Messages[0].From)
	assert.Nil(t, stored.Communication.Messages[0].ReadAt)
}

func TestSendMessageValidation(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	_, err := f.svc.SendMessage(context.Background(), f.app.ID, uuid.New(), &model.SendMessageRequest{
		To: uuid.New(), Subject: "", Body: "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject and body are required")
}

func TestNotifyAppendsAndEmits(t *testing.T) {
	now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
	f := newFixture(t, now)

	got, err := f.svc.Notify(context.Background(), f.app.ID, &model.NotifyRequest{
		Type:           model.NotificationDocumentRequired,
		Title:          "Background check form",
		Body:           "Please upload the signed form",
		ActionRequired: true,
	})
	require.NoError(t, err)

	require.Len(t, got.Communication.Notifications, 1)
	n := got.Communication.Notifications[0]
	assert.Equal(t, model.NotificationDocumentRequired, n.Type)
	assert.True(t, n.ActionRequired)
	assert.Equal(t, now, n.SentAt)
	assert.Nil(t, n.ReadAt)

	events := f.outbox.Events()
	require.Len(t, events, 1)
	assert.Equal(t, model.EventNotificationAppended, events[0].EventType)
}

func TestMarkMessageReadSetsReceiptOnce(t *testing.T) {
	first := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
	f := newFixture(t, first)

	app, err := f.svc.SendMessage(context.Background(), f.app.ID, uuid.New(), &model.SendMessageRequest{
		To: uuid.New(), Subject: "hi", Body: "hello",
	})
	require.NoError(t, err)
	msgID := app.Communication.Messages[0].ID

	got, err := f.svc.MarkMessageRead(context.Background(), f.app.ID, msgID)
	require.NoError(t, err)
	require.NotNil(t, got.Communication.Messages[0].ReadAt)
	assert.Equal(t, first, *got.Communication.Messages[0].ReadAt)

	// A second read must not move the receipt.
	f.svc.clock = clock.Fixed(first.Add(time.Hour))
	got, err = f.svc.MarkMessageRead(context.Background(), f.app.ID, msgID)
	require.NoError(t, err)
	assert.Equal(t, first, *got.Communication.Messages[0].ReadAt)
}

func TestMarkNotificationReadSetsReceiptOnce(t *testing.T) {
	first := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
	f := newFixture(t, first)

	app, err := f.svc.Notify(context.Background(), f.app.ID, &model.NotifyRequest{
		Type: model.NotificationReminder, Title: "Reminder", Body: "Interview tomorrow",
	})
	require.NoError(t, err)
	nID := app.Communication.Notifications[0].ID

	got, err := f.svc.MarkNotificationRead(context.Background(), f.app.ID, nID)
	require.NoError(t, err)
	require.NotNil(t, got.Communication.Notifications[0].ReadAt)

	f.svc.clock = clock.Fixed(first.Add(time.Hour))
	got, err = f.svc.MarkNotificationRead(context.Background(), f.app.ID, nID)
	require.NoError(t, err)
	assert.Equal(t, first, *got.Communication.Notifications[0].ReadAt)
}

func TestMarkReadUnknownIDs(t *testing.T) {
	f := newFixture(t, time.Now().UTC())

	_, err := f.svc.MarkMessageRead(context.Background(), f.app.ID, uuid.New())
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.MarkNotificationRead(context.Background(), f.app.ID, uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}
