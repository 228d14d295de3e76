// Package repositorytest provides in-memory repository fakes for
// service tests. The application store honors the same version
// compare-and-swap contract as the Postgres implementation.
package repositorytest

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
)

type ApplicationStore struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*model.Application

	// UpdateErr, when set, is returned by the next Update call and
	// then cleared.
	UpdateErr error
}

func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{apps: make(map[uuid.UUID]*model.Application)}
}

func copyApp(app *model.Application) *model.Application {
	data, err := json.Marshal(app)
	if err != nil {
		panic(err)
	}
	var out model.Application
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

func (s *ApplicationStore) Create(_ context.Context, app *model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.apps {
		if existing.OpportunityID == app.OpportunityID && existing.VolunteerID == app.VolunteerID {
			return apperrors.BadRequest("application already exists for this opportunity and volunteer", nil)
		}
	}
	app.Version = 1
	s.apps[app.ID] = copyApp(app)
	return nil
}

func (s *ApplicationStore) Get(_ context.Context, id uuid.UUID) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.apps[id]
	if !ok {
		return nil, apperrors.NotFound("application", nil)
	}
	return copyApp(app), nil
}

func (s *ApplicationStore) GetByPair(_ context.Context, opportunityID, volunteerID uuid.UUID) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.OpportunityID == opportunityID && app.VolunteerID == volunteerID {
			return copyApp(app), nil
		}
	}
	return nil, apperrors.NotFound("application", nil)
}

func (s *ApplicationStore) Update(_ context.Context, app *model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UpdateErr != nil {
		err := s.UpdateErr
		s.UpdateErr = nil
		return err
	}

	stored, ok := s.apps[app.ID]
	if !ok {
		return apperrors.NotFound("application", nil)
	}
	if stored.Version != app.Version {
		return apperrors.Conflict("application.update", nil)
	}
	app.Version++
	s.apps[app.ID] = copyApp(app)
	return nil
}

func (s *ApplicationStore) list(filter func(*model.Application) bool, less func(a, b *model.Application) bool, p model.Pagination) []*model.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Application
	for _, app := range s.apps {
		if filter(app) {
			out = append(out, copyApp(app))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	if p.PageSize > 0 {
		offset := (p.Page - 1) * p.PageSize
		if offset < 0 {
			offset = 0
		}
		if offset >= len(out) {
			return nil
		}
		end := offset + p.PageSize
		if end > len(out) {
			end = len(out)
		}
		out = out[offset:end]
	}
	return out
}

func submittedDesc(a, b *model.Application) bool {
	at, bt := a.Timeline.SubmittedAt, b.Timeline.SubmittedAt
	if at == nil || bt == nil {
		return bt == nil && at != nil
	}
	return at.After(*bt)
}

func (s *ApplicationStore) ListByCampaign(_ context.Context, campaignID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.list(func(a *model.Application) bool { return a.CampaignID == campaignID }, submittedDesc, p), nil
}

func (s *ApplicationStore) ListByVolunteer(_ context.Context, volunteerID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.list(func(a *model.Application) bool { return a.VolunteerID == volunteerID }, submittedDesc, p), nil
}

func (s *ApplicationStore) ListByStatus(_ context.Context, status model.ApplicationStatus, p model.Pagination) ([]*model.Application, error) {
	return s.list(func(a *model.Application) bool { return a.Status == status }, submittedDesc, p), nil
}

func (s *ApplicationStore) ListByMatchScore(_ context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.list(
		func(a *model.Application) bool { return a.OpportunityID == opportunityID },
		func(a, b *model.Application) bool { return a.Matching.AIScore > b.Matching.AIScore },
		p,
	), nil
}

func (s *ApplicationStore) ListByReviewScore(_ context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.list(
		func(a *model.Application) bool { return a.OpportunityID == opportunityID },
		func(a, b *model.Application) bool { return a.Review.Scores.Overall > b.Review.Scores.Overall },
		p,
	), nil
}

func (s *ApplicationStore) ListByInterviewDate(_ context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	return s.list(
		func(a *model.Application) bool {
			return a.OpportunityID == opportunityID && a.Interview.ScheduledDate != nil
		},
		func(a, b *model.Application) bool {
			return a.Interview.ScheduledDate.Before(*b.Interview.ScheduledDate)
		},
		p,
	), nil
}

type OutboxStore struct {
	mu     sync.Mutex
	events []*model.OutboxEvent
}

func NewOutboxStore() *OutboxStore {
	return &OutboxStore{}
}

func (s *OutboxStore) Create(_ context.Context, event *model.OutboxEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.Status = string(model.OutboxStatusPending)
	event.CreatedAt = time.Now().UTC()
	event.UpdatedAt = event.CreatedAt

	stored := *event
	s.events = append(s.events, &stored)
	return nil
}

// Events returns the recorded events in append order.
func (s *OutboxStore) Events() []*model.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.OutboxEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *OutboxStore) GetPendingEvents(_ context.Context, limit int) ([]*model.OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.OutboxEvent
	for _, evt := range s.events {
		if evt.Status == string(model.OutboxStatusPending) && len(out) < limit {
			out = append(out, evt)
		}
	}
	return out, nil
}

func (s *OutboxStore) GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	return s.GetPendingEvents(ctx, limit)
}

func (s *OutboxStore) UpdateStatus(_ context.Context, id uuid.UUID, status string, errorMessage *string, processedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, evt := range s.events {
		if evt.ID == id {
			evt.Status = status
			evt.ErrorMessage = errorMessage
			evt.ProcessedAt = processedAt
			evt.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return apperrors.NotFound("outbox event", nil)
}

func (s *OutboxStore) DeleteProcessedBefore(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*model.OutboxEvent
	var deleted int64
	for _, evt := range s.events {
		if evt.Status == string(model.OutboxStatusProcessed) && evt.ProcessedAt != nil && evt.ProcessedAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, evt)
	}
	s.events = kept
	return deleted, nil
}
