package volunteering

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

// Service maintains the hours ledger and the post-acceptance engagement
// record. The ledger is append-only: there is no correction or void
// path, and the running total moves only by appending an entry.
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

// LogHours appends a ledger entry and advances the running total by
// exactly the logged amount. When a verifier identity is supplied the
// entry is stamped verified at append time.
func (s *Service) LogHours(ctx context.Context, id uuid.UUID, req *model.LogHoursRequest, verifier *uuid.UUID) (*model.Application, error) {
	if req.Hours < 0 || req.Hours > 24 {
		return nil, apperrors.BadRequest("hours must be between 0 and 24", nil)
	}
	if req.Activity == "" {
		return nil, apperrors.BadRequest("activity description is required", nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := model.HoursEntry{
		Date:     req.Date,
		Hours:    req.Hours,
		Activity: req.Activity,
	}
	if verifier != nil {
		now := s.clock.Now()
		entry.VerifiedBy = verifier
		entry.VerifiedAt = &now
	}

	app.VolunteeringRecord.HoursLogged = append(app.VolunteeringRecord.HoursLogged, entry)
	app.VolunteeringRecord.TotalHours += req.Hours

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.HoursLogged.Inc()
	}

	if err := s.events.Emit(ctx, model.EventHoursLogged, model.JSONMap{
		"application_id": app.ID,
		"date":           req.Date,
		"hours":          req.Hours,
		"total_hours":    app.VolunteeringRecord.TotalHours,
	}); err != nil {
		return nil, fmt.Errorf("failed to emit hours logged event: %w", err)
	}

	return app, nil
}

func (s *Service) UpdateRecord(ctx context.Context, id uuid.UUID, req *model.UpdateVolunteeringRequest) (*model.Application, error) {
	if req.CompletionStatus != nil && !model.ValidCompletionStatus(*req.CompletionStatus) {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown completion status %q", *req.CompletionStatus), nil)
	}
	if req.Performance != nil {
		if err := validatePerformance(req.Performance); err != nil {
			return nil, apperrors.BadRequest(err.Error(), nil)
		}
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := &app.VolunteeringRecord
	if req.StartDate != nil {
		rec.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		rec.EndDate = req.EndDate
	}
	if req.CompletionStatus != nil {
		rec.CompletionStatus = *req.CompletionStatus
	}
	if req.Performance != nil {
		rec.Performance = req.Performance
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Service) SubmitVolunteerFeedback(ctx context.Context, id uuid.UUID, req *model.FeedbackRequest) (*model.Application, error) {
	return s.submitFeedback(ctx, id, req, false)
}

func (s *Service) SubmitOrganizationFeedback(ctx context.Context, id uuid.UUID, req *model.FeedbackRequest) (*model.Application, error) {
	return s.submitFeedback(ctx, id, req, true)
}

func (s *Service) submitFeedback(ctx context.Context, id uuid.UUID, req *model.FeedbackRequest, fromOrganization bool) (*model.Application, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.BadRequest("rating must be between 1 and 5", nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	block := &model.FeedbackBlock{
		Rating:      req.Rating,
		Comments:    req.Comments,
		SubmittedAt: s.clock.Now(),
	}
	if fromOrganization {
		app.VolunteeringRecord.OrganizationFeedback = block
	} else {
		app.VolunteeringRecord.VolunteerFeedback = block
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func validatePerformance(p *model.PerformanceRatings) error {
	for _, r := range []struct {
		name  string
		value int
	}{
		{"reliability", p.Reliability},
		{"communication", p.Communication},
		{"teamwork", p.Teamwork},
		{"initiative", p.Initiative},
		{"quality_of_work", p.QualityOfWork},
		{"overall", p.Overall},
	} {
		if r.value < 1 || r.value > 5 {
			return fmt.Errorf("%s rating must be between 1 and 5", r.name)
		}
	}
	return nil
}
