package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewModality string

const (
	ModalityPhone    InterviewModality = "phone"
	ModalityVideo    InterviewModality = "video"
	ModalityInPerson InterviewModality = "in-person"
)

type RescheduleRequester string

const (
	RequestedByVolunteer    RescheduleRequester = "volunteer"
	RequestedByOrganization RescheduleRequester = "organization"
)

type InterviewRecommendation string

const (
	InterviewAccept          InterviewRecommendation = "accept"
	InterviewReject          InterviewRecommendation = "reject"
	InterviewSecondInterview InterviewRecommendation = "second-interview"
)

// MaxRescheduleReasonLength bounds the free-text reason on a reschedule record.
const MaxRescheduleReasonLength = 500

// Interview holds the schedule for the application's interview. The
// schedule fields are mutable; Rescheduled is append-only history.
// Feedback is a single block: only the latest interview's feedback is
// retained.
type Interview struct {
	Required      bool               `json:"required"`
	ScheduledDate *time.Time         `json:"scheduled_date,omitempty"`
	DurationMins  int                `json:"duration_mins,omitempty"`
	Modality      InterviewModality  `json:"modality,omitempty"`
	Location      string             `json:"location,omitempty"`
	MeetingLink   string             `json:"meeting_link,omitempty"`
	Interviewers  []uuid.UUID        `json:"interviewers,omitempty"`
	Feedback      *InterviewFeedback `json:"feedback,omitempty"`
	Rescheduled   []RescheduleRecord `json:"rescheduled,omitempty"`
}

type InterviewFeedback struct {
	Rating         int                     `json:"rating"`
	Notes          string                  `json:"notes,omitempty"`
	Recommendation InterviewRecommendation `json:"recommendation"`
}

type RescheduleRecord struct {
	OriginalDate time.Time           `json:"original_date"`
	NewDate      time.Time           `json:"new_date"`
	Reason       string              `json:"reason"`
	RequestedBy  RescheduleRequester `json:"requested_by"`
	RequestedAt  time.Time           `json:"requested_at"`
}

type ScheduleInterviewRequest struct {
	ScheduledDate time.Time         `json:"scheduled_date" binding:"required"`
	DurationMins  int               `json:"duration_mins" binding:"required,min=5,max=480"`
	Modality      InterviewModality `json:"modality" binding:"required,oneof=phone video in-person"`
	Location      string            `json:"location" binding:"max=500"`
	MeetingLink   string            `json:"meeting_link" binding:"max=2000"`
	Interviewers  []uuid.UUID       `json:"interviewers"`
}

type RescheduleInterviewRequest struct {
	NewDate     time.Time           `json:"new_date" binding:"required"`
	Reason      string              `json:"reason" binding:"required,max=500"`
	RequestedBy RescheduleRequester `json:"requested_by" binding:"required,oneof=volunteer organization"`
}

type InterviewFeedbackRequest struct {
	Rating         int                     `json:"rating" binding:"required,min=1,max=5"`
	Notes          string                  `json:"notes" binding:"max=5000"`
	Recommendation InterviewRecommendation `json:"recommendation" binding:"required,oneof=accept reject second-interview"`
}
