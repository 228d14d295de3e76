package model

import (
	"time"

	"github.com/google/uuid"
)

type CompletionStatus string

const (
	CompletionInProgress CompletionStatus = "in-progress"
	CompletionCompleted  CompletionStatus = "completed"
	CompletionDroppedOut CompletionStatus = "dropped-out"
	CompletionPaused     CompletionStatus = "paused"
)

// ValidCompletionStatus reports whether s is a known completion status.
func ValidCompletionStatus(s CompletionStatus) bool {
	switch s {
	case CompletionInProgress, CompletionCompleted, CompletionDroppedOut, CompletionPaused:
		return true
	}
	return false
}

// VolunteeringRecord tracks the engagement after acceptance. HoursLogged
// is append-only: TotalHours moves only by appending an entry and must
// equal the sum of all entries at all times.
type VolunteeringRecord struct {
	StartDate            *time.Time          `json:"start_date,omitempty"`
	EndDate              *time.Time          `json:"end_date,omitempty"`
	HoursLogged          []HoursEntry        `json:"hours_logged,omitempty"`
	TotalHours           float64             `json:"total_hours"`
	CompletionStatus     CompletionStatus    `json:"completion_status"`
	Performance          *PerformanceRatings `json:"performance,omitempty"`
	VolunteerFeedback    *FeedbackBlock      `json:"volunteer_feedback,omitempty"`
	OrganizationFeedback *FeedbackBlock      `json:"organization_feedback,omitempty"`
}

type HoursEntry struct {
	Date       time.Time  `json:"date"`
	Hours      float64    `json:"hours"`
	Activity   string     `json:"activity"`
	VerifiedBy *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// PerformanceRatings are 1-5 per dimension.
type PerformanceRatings struct {
	Reliability   int `json:"reliability"`
	Communication int `json:"communication"`
	Teamwork      int `json:"teamwork"`
	Initiative    int `json:"initiative"`
	QualityOfWork int `json:"quality_of_work"`
	Overall       int `json:"overall"`
}

type FeedbackBlock struct {
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type LogHoursRequest struct {
	Date     time.Time `json:"date" binding:"required"`
	Hours    float64   `json:"hours" binding:"min=0,max=24"`
	Activity string    `json:"activity" binding:"required,max=1000"`
}

type UpdateVolunteeringRequest struct {
	StartDate        *time.Time          `json:"start_date"`
	EndDate          *time.Time          `json:"end_date"`
	CompletionStatus *CompletionStatus   `json:"completion_status"`
	Performance      *PerformanceRatings `json:"performance"`
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments" binding:"max=5000"`
}
