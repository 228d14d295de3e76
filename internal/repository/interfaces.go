package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
)

type (
	// ApplicationRepository persists the application aggregate. Update is
	// a compare-and-swap on the aggregate's version: a lost race surfaces
	// as a conflict error, never a silent merge.
	ApplicationRepository interface {
		Create(ctx context.Context, app *model.Application) error
		Get(ctx context.Context, id uuid.UUID) (*model.Application, error)
		GetByPair(ctx context.Context, opportunityID, volunteerID uuid.UUID) (*model.Application, error)
		Update(ctx context.Context, app *model.Application) error
		ListByCampaign(ctx context.Context, campaignID uuid.UUID, p model.Pagination) ([]*model.Application, error)
		ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, p model.Pagination) ([]*model.Application, error)
		ListByStatus(ctx context.Context, status model.ApplicationStatus, p model.Pagination) ([]*model.Application, error)
		ListByMatchScore(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error)
		ListByReviewScore(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error)
		ListByInterviewDate(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status string, errorMessage *string, processedAt *time.Time) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}
)
