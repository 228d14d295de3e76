package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
)

const pqUniqueViolation = "23505"

// applicationRow is the storage shape of the aggregate: identity and
// ordering columns as scalars, every sub-document as JSONB.
type applicationRow struct {
	ID            uuid.UUID               `db:"id"`
	OpportunityID uuid.UUID               `db:"opportunity_id"`
	CampaignID    uuid.UUID               `db:"campaign_id"`
	VolunteerID   uuid.UUID               `db:"volunteer_id"`
	Status        model.ApplicationStatus `db:"status"`
	Version       int64                   `db:"version"`
	SubmittedAt   time.Time               `db:"submitted_at"`
	AIScore       int                     `db:"ai_score"`
	ReviewScore   int                     `db:"review_score"`
	InterviewDate *time.Time              `db:"interview_date"`

	ApplicationData    json.RawMessage `db:"application_data"`
	Timeline           json.RawMessage `db:"timeline"`
	Review             json.RawMessage `db:"review"`
	Interview          json.RawMessage `db:"interview"`
	Communication      json.RawMessage `db:"communication"`
	Matching           json.RawMessage `db:"matching"`
	VolunteeringRecord json.RawMessage `db:"volunteering_record"`
	Metadata           json.RawMessage `db:"metadata"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toRow(app *model.Application) (*applicationRow, error) {
	row := &applicationRow{
		ID:            app.ID,
		OpportunityID: app.OpportunityID,
		CampaignID:    app.CampaignID,
		VolunteerID:   app.VolunteerID,
		Status:        app.Status,
		Version:       app.Version,
		AIScore:       app.Matching.AIScore,
		ReviewScore:   app.Review.Scores.Overall,
		InterviewDate: app.Interview.ScheduledDate,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
	if app.Timeline.SubmittedAt != nil {
		row.SubmittedAt = *app.Timeline.SubmittedAt
	}

	for _, f := range []struct {
		dst *json.RawMessage
		src interface{}
	}{
		{&row.ApplicationData, app.ApplicationData},
		{&row.Timeline, app.Timeline},
		{&row.Review, app.Review},
		{&row.Interview, app.Interview},
		{&row.Communication, app.Communication},
		{&row.Matching, app.Matching},
		{&row.VolunteeringRecord, app.VolunteeringRecord},
		{&row.Metadata, app.Metadata},
	} {
		data, err := json.Marshal(f.src)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal sub-document: %w", err)
		}
		*f.dst = data
	}

	return row, nil
}

func fromRow(row *applicationRow) (*model.Application, error) {
	app := &model.Application{
		Base: model.Base{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		OpportunityID: row.OpportunityID,
		CampaignID:    row.CampaignID,
		VolunteerID:   row.VolunteerID,
		Status:        row.Status,
		Version:       row.Version,
	}

	for _, f := range []struct {
		src json.RawMessage
		dst interface{}
	}{
		{row.ApplicationData, &app.ApplicationData},
		{row.Timeline, &app.Timeline},
		{row.Review, &app.Review},
		{row.Interview, &app.Interview},
		{row.Communication, &app.Communication},
		{row.Matching, &app.Matching},
		{row.VolunteeringRecord, &app.VolunteeringRecord},
		{row.Metadata, &app.Metadata},
	} {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sub-document: %w", err)
		}
	}

	return app, nil
}

const applicationColumns = `
	id, opportunity_id, campaign_id, volunteer_id, status, version,
	submitted_at, ai_score, review_score, interview_date,
	application_data, timeline, review, interview, communication,
	matching, volunteering_record, metadata, created_at, updated_at
`

func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	app.Version = 1
	row, err := toRow(app)
	if err != nil {
		return apperrors.Internal("application.create", err)
	}

	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`
	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.OpportunityID, row.CampaignID, row.VolunteerID,
		row.Status, row.Version, row.SubmittedAt, row.AIScore,
		row.ReviewScore, row.InterviewDate,
		row.ApplicationData, row.Timeline, row.Review, row.Interview,
		row.Communication, row.Matching, row.VolunteeringRecord,
		row.Metadata, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return apperrors.BadRequest("application already exists for this opportunity and volunteer", err)
		}
		return apperrors.Internal("application.create", err)
	}
	return nil
}

func (r *applicationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var row applicationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("application", err)
		}
		return nil, apperrors.Internal("application.get", err)
	}
	return fromRow(&row)
}

func (r *applicationRepository) GetByPair(ctx context.Context, opportunityID, volunteerID uuid.UUID) (*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE opportunity_id = $1 AND volunteer_id = $2
	`
	var row applicationRow
	err := r.db.GetContext(ctx, &row, query, opportunityID, volunteerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("application", err)
		}
		return nil, apperrors.Internal("application.get_by_pair", err)
	}
	return fromRow(&row)
}

// Update writes the aggregate back as one unit, guarded by the version
// read when the aggregate was loaded. A zero-row update means either
// the row vanished or another writer won the race; the two are
// distinguished so callers can retry conflicts.
func (r *applicationRepository) Update(ctx context.Context, app *model.Application) error {
	expected := app.Version
	app.Version++
	app.UpdatedAt = time.Now()

	row, err := toRow(app)
	if err != nil {
		app.Version = expected
		return apperrors.Internal("application.update", err)
	}

	query := `
		UPDATE applications SET
			status = $1, version = $2, ai_score = $3, review_score = $4,
			interview_date = $5, application_data = $6, timeline = $7,
			review = $8, interview = $9, communication = $10,
			matching = $11, volunteering_record = $12, metadata = $13,
			updated_at = $14
		WHERE id = $15 AND version = $16
	`
	result, err := r.db.ExecContext(ctx, query,
		row.Status, row.Version, row.AIScore, row.ReviewScore,
		row.InterviewDate, row.ApplicationData, row.Timeline,
		row.Review, row.Interview, row.Communication,
		row.Matching, row.VolunteeringRecord, row.Metadata,
		row.UpdatedAt, row.ID, expected,
	)
	if err != nil {
		app.Version = expected
		return apperrors.Internal("application.update", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		app.Version = expected
		return apperrors.Internal("application.update", err)
	}
	if rows == 0 {
		app.Version = expected
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM applications WHERE id = $1)`, app.ID); err != nil {
			return apperrors.Internal("application.update", err)
		}
		if !exists {
			return apperrors.NotFound("application", nil)
		}
		return apperrors.Conflict("application.update", nil)
	}

	return nil
}

func (r *applicationRepository) list(ctx context.Context, op, query string, p model.Pagination, args ...interface{}) ([]*model.Application, error) {
	if p.PageSize <= 0 {
		p.PageSize = 50
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", p.PageSize, (p.Page-1)*p.PageSize)

	var rows []*applicationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.Internal(op, err)
	}

	apps := make([]*model.Application, 0, len(rows))
	for _, row := range rows {
		app, err := fromRow(row)
		if err != nil {
			return nil, apperrors.Internal(op, err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *applicationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE campaign_id = $1
		ORDER BY submitted_at DESC
	`
	return r.list(ctx, "application.list_by_campaign", query, p, campaignID)
}

func (r *applicationRepository) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE volunteer_id = $1
		ORDER BY submitted_at DESC
	`
	return r.list(ctx, "application.list_by_volunteer", query, p, volunteerID)
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status model.ApplicationStatus, p model.Pagination) ([]*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE status = $1
		ORDER BY submitted_at DESC
	`
	return r.list(ctx, "application.list_by_status", query, p, status)
}

func (r *applicationRepository) ListByMatchScore(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE opportunity_id = $1
		ORDER BY ai_score DESC
	`
	return r.list(ctx, "application.list_by_match_score", query, p, opportunityID)
}

func (r *applicationRepository) ListByReviewScore(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE opportunity_id = $1
		ORDER BY review_score DESC
	`
	return r.list(ctx, "application.list_by_review_score", query, p, opportunityID)
}

func (r *applicationRepository) ListByInterviewDate(ctx context.Context, opportunityID uuid.UUID, p model.Pagination) ([]*model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE opportunity_id = $1 AND interview_date IS NOT NULL
		ORDER BY interview_date ASC
	`
	return r.list(ctx, "application.list_by_interview_date", query, p, opportunityID)
}
