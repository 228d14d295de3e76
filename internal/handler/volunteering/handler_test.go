package volunteering

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository/repositorytest"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/event"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/volunteering"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/clock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *model.Application) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
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

	svc := volunteering.NewService(store, event.NewService(outbox, nil), clock.Fixed(now), nil)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, app
}

func logHours(r *gin.Engine, appID uuid.UUID, hours float64) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"date":"2026-03-30T00:00:00Z","hours":%g,"activity":"shift"}`, hours)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/hours", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogHoursEndpointAcceptsRangeBoundaries(t *testing.T) {
	r, app := newTestRouter(t)

	for _, hours := range []float64{0, 24} {
		w := logHours(r, app.ID, hours)
		assert.Equal(t, http.StatusOK, w.Code, "hours=%v: %s", hours, w.Body.String())
	}
}

func TestLogHoursEndpointRejectsOutOfRange(t *testing.T) {
	r, app := newTestRouter(t)

	for _, hours := range []float64{-1, 24.5} {
		w := logHours(r, app.ID, hours)
		assert.Equal(t, http.StatusBadRequest, w.Code, "hours=%v", hours)
	}
}
