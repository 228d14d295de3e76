package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/event"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/clock"
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
)

const (
	MinInterviewDuration = 5
	MaxInterviewDuration = 480
)

// Service manages the interview block: a mutable schedule, an
// append-only reschedule history, and one feedback block that only ever
// holds the latest interview's outcome.
type Service struct {
	repo   repository.ApplicationRepository
	events *event.Service
	clock  clock.Clock
}

func NewService(repo repository.ApplicationRepository, events *event.Service, clk clock.Clock) *Service {
	return &Service{
		repo:   repo,
		events: events,
		clock:  clk,
	}
}

// Schedule sets the interview fields, moves the application to
// interview-scheduled, and appends the interview-scheduled
// notification, all in one aggregate write.
func (s *Service) Schedule(ctx context.Context, id uuid.UUID, req *model.ScheduleInterviewRequest) (*model.Application, error) {
	if req.DurationMins < MinInterviewDuration || req.DurationMins > MaxInterviewDuration {
		return nil, apperrors.BadRequest(fmt.Sprintf("duration must be between %d and %d minutes", MinInterviewDuration, MaxInterviewDuration), nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date := req.ScheduledDate
	app.Interview.Required = true
	app.Interview.ScheduledDate = &date
	app.Interview.DurationMins = req.DurationMins
	app.Interview.Modality = req.Modality
	app.Interview.Location = req.Location
	app.Interview.MeetingLink = req.MeetingLink
	app.Interview.Interviewers = req.Interviewers

	oldStatus := app.Status
	app.Status = model.StatusInterviewScheduled
	app.Timeline.Stamp(model.StatusInterviewScheduled, now)

	app.Communication.Notifications = append(app.Communication.Notifications, model.Notification{
		ID:             uuid.New(),
		Type:           model.NotificationInterviewScheduled,
		Title:          "Interview scheduled",
		Body:           fmt.Sprintf("An interview has been scheduled for %s", date.Format("2006-01-02 15:04")),
		SentAt:         now,
		ActionRequired: true,
	})

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err := s.events.Emit(ctx, model.EventInterviewScheduled, model.JSONMap{
		"application_id": app.ID,
		"old_status":     oldStatus,
		"scheduled_date": date,
		"modality":       req.Modality,
	}); err != nil {
		return nil, fmt.Errorf("failed to emit interview scheduled event: %w", err)
	}

	return app, nil
}

// Reschedule moves the interview date and appends the reschedule record
// capturing the original date, the mandatory reason, and who asked.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, req *model.RescheduleInterviewRequest) (*model.Application, error) {
	if req.Reason == "" {
		return nil, apperrors.BadRequest("reschedule reason is required", nil)
	}
	if len(req.Reason) > model.MaxRescheduleReasonLength {
		return nil, apperrors.BadRequest(fmt.Sprintf("reschedule reason must not exceed %d characters", model.MaxRescheduleReasonLength), nil)
	}
	if req.RequestedBy != model.RequestedByVolunteer && req.RequestedBy != model.RequestedByOrganization {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown requester %q", req.RequestedBy), nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Interview.ScheduledDate == nil {
		return nil, apperrors.BadRequest("no interview scheduled", nil)
	}

	now := s.clock.Now()
	original := *app.Interview.ScheduledDate
	newDate := req.NewDate

	app.Interview.Rescheduled = append(app.Interview.Rescheduled, model.RescheduleRecord{
		OriginalDate: original,
		NewDate:      newDate,
		Reason:       req.Reason,
		RequestedBy:  req.RequestedBy,
		RequestedAt:  now,
	})
	app.Interview.ScheduledDate = &newDate

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err := s.events.Emit(ctx, model.EventInterviewRescheduled, model.JSONMap{
		"application_id": app.ID,
		"original_date":  original,
		"new_date":       newDate,
		"requested_by":   req.RequestedBy,
	}); err != nil {
		return nil, fmt.Errorf("failed to emit interview rescheduled event: %w", err)
	}

	return app, nil
}

// RecordFeedback overwrites the feedback block; prior feedback is not
// retained.
func (s *Service) RecordFeedback(ctx context.Context, id uuid.UUID, req *model.InterviewFeedbackRequest) (*model.Application, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.BadRequest("rating must be between 1 and 5", nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Interview.ScheduledDate == nil {
		return nil, apperrors.BadRequest("no interview scheduled", nil)
	}

	app.Interview.Feedback = &model.InterviewFeedback{
		Rating:         req.Rating,
		Notes:          req.Notes,
		Recommendation: req.Recommendation,
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
