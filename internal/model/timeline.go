package model

import "time"

// Timeline records the first moment each lifecycle status was reached.
// SubmittedAt is set at creation; every other slot is stamped at most
// once, on first entry into its status, and never overwritten.
type Timeline struct {
	SubmittedAt          *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	ShortlistedAt        *time.Time `json:"shortlisted_at,omitempty"`
	InterviewScheduledAt *time.Time `json:"interview_scheduled_at,omitempty"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	RejectedAt           *time.Time `json:"rejected_at,omitempty"`
	WithdrawnAt          *time.Time `json:"withdrawn_at,omitempty"`
}

// slot returns the timeline field backing a status. The mapping is an
// exhaustive switch so a new status fails to compile rather than
// silently going unstamped.
func (t *Timeline) slot(status ApplicationStatus) **time.Time {
	switch status {
	case StatusSubmitted:
		return &t.SubmittedAt
	case StatusUnderReview:
		return &t.ReviewedAt
	case StatusShortlisted:
		return &t.ShortlistedAt
	case StatusInterviewScheduled:
		return &t.InterviewScheduledAt
	case StatusAccepted:
		return &t.AcceptedAt
	case StatusRejected:
		return &t.RejectedAt
	case StatusWithdrawn:
		return &t.WithdrawnAt
	}
	return nil
}

// Stamp sets the slot for status to now if it has never been set.
// It reports whether a stamp was written; re-entering a status leaves
// the original timestamp intact.
func (t *Timeline) Stamp(status ApplicationStatus, now time.Time) bool {
	slot := t.slot(status)
	if slot == nil || *slot != nil {
		return false
	}
	ts := now
	*slot = &ts
	return true
}

// StampedAt returns the recorded first-entry time for status, or nil.
func (t *Timeline) StampedAt(status ApplicationStatus) *time.Time {
	slot := t.slot(status)
	if slot == nil {
		return nil
	}
	return *slot
}
