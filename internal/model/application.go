package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusSubmitted          ApplicationStatus = "submitted"
	StatusUnderReview        ApplicationStatus = "under-review"
	StatusShortlisted        ApplicationStatus = "shortlisted"
	StatusInterviewScheduled ApplicationStatus = "interview-scheduled"
	StatusAccepted           ApplicationStatus = "accepted"
	StatusRejected           ApplicationStatus = "rejected"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
)

// ValidStatus reports whether s is one of the seven lifecycle statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusShortlisted,
		StatusInterviewScheduled, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application is the aggregate: one record per (opportunity, volunteer)
// pair plus every embedded sub-structure. All sub-structures are value
// types owned by the aggregate and are read and written as one unit;
// Version backs the optimistic write path.
type Application struct {
	Base
	OpportunityID uuid.UUID         `db:"opportunity_id" json:"opportunity_id"`
	CampaignID    uuid.UUID         `db:"campaign_id" json:"campaign_id"`
	VolunteerID   uuid.UUID         `db:"volunteer_id" json:"volunteer_id"`
	Status        ApplicationStatus `db:"status" json:"status"`
	Version       int64             `db:"version" json:"version"`

	ApplicationData    ApplicationData    `db:"-" json:"application_data"`
	Timeline           Timeline           `db:"-" json:"timeline"`
	Review             Review             `db:"-" json:"review"`
	Interview          Interview          `db:"-" json:"interview"`
	Communication      CommunicationLog   `db:"-" json:"communication"`
	Matching           MatchingResult     `db:"-" json:"matching"`
	VolunteeringRecord VolunteeringRecord `db:"-" json:"volunteering_record"`
	Metadata           Metadata           `db:"-" json:"metadata"`
}

// ApplicationData holds everything the volunteer supplied at submission.
type ApplicationData struct {
	Answers      []Answer     `json:"answers,omitempty"`
	Documents    []Document   `json:"documents,omitempty"`
	Motivation   string       `json:"motivation,omitempty"`
	Availability Availability `json:"availability"`
	Experience   Experience   `json:"experience"`
	References   []Reference  `json:"references,omitempty"`
}

type Answer struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Type       string `json:"type"`
}

type Document struct {
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type Availability struct {
	// WeeklySchedule maps a weekday name to the time ranges offered,
	// e.g. "monday" -> ["09:00-12:00", "14:00-17:00"].
	WeeklySchedule map[string][]string `json:"weekly_schedule,omitempty"`
	HoursPerWeek   float64             `json:"hours_per_week"`
	StartDate      *time.Time          `json:"start_date,omitempty"`
	EndDate        *time.Time          `json:"end_date,omitempty"`
}

type Experience struct {
	Prior  []PriorVolunteering `json:"prior,omitempty"`
	Skills []Skill             `json:"skills,omitempty"`
}

type PriorVolunteering struct {
	Organization string     `json:"organization"`
	Role         string     `json:"role"`
	Description  string     `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Years int    `json:"years"`
}

type Reference struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Contact      string `json:"contact"`
	Response     string `json:"response,omitempty"`
}

// Metadata captures submission provenance.
type Metadata struct {
	SourceChannel string `json:"source_channel,omitempty"`
	ReferralCode  string `json:"referral_code,omitempty"`
	UTMSource     string `json:"utm_source,omitempty"`
	UTMMedium     string `json:"utm_medium,omitempty"`
	UTMCampaign   string `json:"utm_campaign,omitempty"`
	RequestOrigin string `json:"request_origin,omitempty"`
}

// IsPending reports whether the application is in one of the four
// non-terminal statuses.
func (a *Application) IsPending() bool {
	switch a.Status {
	case StatusSubmitted, StatusUnderReview, StatusShortlisted, StatusInterviewScheduled:
		return true
	}
	return false
}

// AgeDays returns whole days elapsed since submission.
func (a *Application) AgeDays(now time.Time) int {
	if a.Timeline.SubmittedAt == nil {
		return 0
	}
	return int(now.Sub(*a.Timeline.SubmittedAt).Hours() / 24)
}

// IsInterviewOverdue reports whether an interview was scheduled, its
// date has passed, and the application never moved past
// interview-scheduled.
func (a *Application) IsInterviewOverdue(now time.Time) bool {
	return a.Status == StatusInterviewScheduled &&
		a.Interview.ScheduledDate != nil &&
		a.Interview.ScheduledDate.Before(now)
}

type SubmitApplicationRequest struct {
	OpportunityID uuid.UUID       `json:"opportunity_id" binding:"required"`
	CampaignID    uuid.UUID       `json:"campaign_id"`
	VolunteerID   uuid.UUID       `json:"volunteer_id" binding:"required"`
	Data          ApplicationData `json:"application_data"`
	Metadata      Metadata        `json:"metadata"`
}

type TransitionRequest struct {
	Status ApplicationStatus `json:"status" binding:"required"`
}

type ApplicationFilters struct {
	CampaignID  uuid.UUID
	VolunteerID uuid.UUID
	Status      ApplicationStatus
	Pagination  Pagination
}
