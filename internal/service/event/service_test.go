package event

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository/repositorytest"
)

func TestEmitWritesOutboxRow(t *testing.T) {
	outbox := repositorytest.NewOutboxStore()
	svc := NewService(outbox, nil)

	appID := uuid.New()
	err := svc.Emit(context.Background(), model.EventStatusChanged, model.JSONMap{
		"application_id": appID,
		"new_status":     model.StatusAccepted,
	})
	require.NoError(t, err)

	events := outbox.Events()
	require.Len(t, events, 1)
	evt := events[0]
	assert.Equal(t, model.EventStatusChanged, evt.EventType)
	assert.Equal(t, string(model.OutboxStatusPending), evt.Status)
	assert.NotEqual(t, uuid.Nil, evt.ID)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	assert.Equal(t, appID.String(), payload["application_id"])
	assert.Equal(t, string(model.StatusAccepted), payload["new_status"])
}

func TestEmitRejectsUnmarshalablePayload(t *testing.T) {
	outbox := repositorytest.NewOutboxStore()
	svc := NewService(outbox, nil)

	err := svc.Emit(context.Background(), model.EventHoursLogged, make(chan int))
	require.Error(t, err)
	assert.Empty(t, outbox.Events())
}
