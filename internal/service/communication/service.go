package communication

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

// Service appends to the application's communication log. Messages and
// notifications are pure history: appended, never edited beyond the
// read receipt, never removed.
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

func (s *Service) SendMessage(ctx context.Context, id, from uuid.UUID, req *model.SendMessageRequest) (*model.Application, error) {
	if req.Subject == "" || req.Body == "" {
		return nil, apperrors.BadRequest("subject and body are required", nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	app.Communication.Messages = append(app.Communication.Messages, model.Message{
		ID:          uuid.New(),
		From:        from,
		To:          req.To,
		Subject:     req.Subject,
		Body:        req.Body,
		SentAt:      s.clock.Now(),
		Attachments: req.Attachments,
	})

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Service) Notify(ctx context.Context, id uuid.UUID, req *model.NotifyRequest) (*model.Application, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	notification := model.Notification{
		ID:             uuid.New(),
		Type:           req.Type,
		Title:          req.Title,
		Body:           req.Body,
		SentAt:         s.clock.Now(),
		ActionRequired: req.ActionRequired,
	}
	app.Communication.Notifications = append(app.Communication.Notifications, notification)

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err := s.events.Emit(ctx, model.EventNotificationAppended, model.JSONMap{
		"application_id":  app.ID,
		"notification_id": notification.ID,
		"type":            notification.Type,
		"action_required": notification.ActionRequired,
	}); err != nil {
		return nil, fmt.Errorf("failed to emit notification event: %w", err)
	}

	return app, nil
}

func (s *Service) MarkMessageRead(ctx context.Context, id, messageID uuid.UUID) (*model.Application, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range app.Communication.Messages {
		if app.Communication.Messages[i].ID == messageID {
			if app.Communication.Messages[i].ReadAt == nil {
				now := s.clock.Now()
				app.Communication.Messages[i].ReadAt = &now
			}
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NotFound("message", nil)
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id, notificationID uuid.UUID) (*model.Application, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range app.Communication.Notifications {
		if app.Communication.Notifications[i].ID == notificationID {
			if app.Communication.Notifications[i].ReadAt == nil {
				now := s.clock.Now()
				app.Communication.Notifications[i].ReadAt = &now
			}
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NotFound("notification", nil)
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
