package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/event"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/clock"
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/metrics"
)

// Service is the lifecycle controller: submission, status transitions,
// review recording. Every mutation loads the aggregate, mutates it in
// memory, and writes it back as one versioned unit.
type Service struct {
	repo    repository.ApplicationRepository
	events  *event.Service
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewService(repo repository.ApplicationRepository, events *event.Service, clk clock.Clock, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		events:  events,
		clock:   clk,
		metrics: m,
	}
}

func (s *Service) Submit(ctx context.Context, req *model.SubmitApplicationRequest) (*model.Application, error) {
	if err := validateApplicationData(&req.Data); err != nil {
		return nil, apperrors.BadRequest(err.Error(), nil)
	}

	now := s.clock.Now()
	app := &model.Application{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OpportunityID:   req.OpportunityID,
		CampaignID:      req.CampaignID,
		VolunteerID:     req.VolunteerID,
		Status:          model.StatusSubmitted,
		ApplicationData: req.Data,
		Metadata:        req.Metadata,
		VolunteeringRecord: model.VolunteeringRecord{
			CompletionStatus: model.CompletionInProgress,
		},
	}
	app.Timeline.Stamp(model.StatusSubmitted, now)

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ApplicationsSubmitted.Inc()
	}

	return app, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.Get(ctx, id)
}

// GetByPair looks up the one application a volunteer may hold for an
// opportunity.
func (s *Service) GetByPair(ctx context.Context, opportunityID, volunteerID uuid.UUID) (*model.Application, error) {
	return s.repo.GetByPair(ctx, opportunityID, volunteerID)
}

// TransitionStatus records newStatus unconditionally: the engine does
// not enforce an adjacency graph, callers needing workflow legality
// enforce it above this layer. The timeline slot for newStatus is
// stamped only on first entry; the status-update notification is
// appended on every call. Status, stamp and notification land in one
// aggregate write.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, newStatus model.ApplicationStatus, actor uuid.UUID) (*model.Application, error) {
	if !model.ValidStatus(newStatus) {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown status %q", newStatus), nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	oldStatus := app.Status
	app.Status = newStatus
	app.Timeline.Stamp(newStatus, now)

	notification := model.Notification{
		ID:     uuid.New(),
		Type:   model.NotificationStatusUpdate,
		Title:  "Application status updated",
		Body:   fmt.Sprintf("Application status changed from %s to %s", oldStatus, newStatus),
		SentAt: now,
	}
	app.Communication.Notifications = append(app.Communication.Notifications, notification)

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.StatusTransitions.WithLabelValues(string(oldStatus), string(newStatus)).Inc()
	}

	if err := s.events.Emit(ctx, model.EventStatusChanged, model.JSONMap{
		"application_id": app.ID,
		"old_status":     oldStatus,
		"new_status":     newStatus,
		"actor_id":       actor,
		"occurred_at":    now,
	}); err != nil {
		return nil, fmt.Errorf("failed to emit status change event: %w", err)
	}

	return app, nil
}

func (s *Service) SubmitReview(ctx context.Context, id, reviewerID uuid.UUID, req *model.ReviewRequest) (*model.Application, error) {
	if err := validateReviewScores(&req.Scores); err != nil {
		return nil, apperrors.BadRequest(err.Error(), nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	app.Review = model.Review{
		ReviewerID:     reviewerID,
		Scores:         req.Scores,
		Notes:          req.Notes,
		Strengths:      req.Strengths,
		Concerns:       req.Concerns,
		Recommendation: req.Recommendation,
		ReviewedAt:     &now,
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Service) ListByCampaign(ctx context.Context, campaignID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.repo.ListByCampaign(ctx, campaignID, p)
}

func (s *Service) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.repo.ListByVolunteer(ctx, volunteerID, p)
}

func (s *Service) ListByStatus(ctx context.Context, status model.ApplicationStatus, p model.Pagination) ([]*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown status %q", status), nil)
	}
	return s.repo.ListByStatus(ctx, status, p)
}

func (s *Service) ListByMatchScore(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.repo.ListByMatchScore(ctx, opportunityID, p)
}

func (s *Service) ListByReviewScore(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.repo.ListByReviewScore(ctx, opportunityID, p)
}

func (s *Service) ListByInterviewDate(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.repo.ListByInterviewDate(ctx, opportunityID, p)
}

func validateApplicationData(data *model.ApplicationData) error {
	for i, ref := range data.References {
		if ref.Name == "" {
			return fmt.Errorf("reference %d: name is required", i)
		}
		if ref.Relationship == "" {
			return fmt.Errorf("reference %d: relationship is required", i)
		}
	}
	if data.Availability.HoursPerWeek < 0 {
		return fmt.Errorf("hours per week cannot be negative")
	}
	return nil
}

func validateReviewScores(scores *model.ReviewScores) error {
	for _, s := range []struct {
		name  string
		value int
	}{
		{"overall", scores.Overall},
		{"skill_match", scores.SkillMatch},
		{"experience_match", scores.ExperienceMatch},
		{"motivation_score", scores.MotivationScore},
		{"availability_match", scores.AvailabilityMatch},
	} {
		if s.value < 0 || s.value > 100 {
			return fmt.Errorf("%s score must be between 0 and 100", s.name)
		}
	}
	return nil
}
