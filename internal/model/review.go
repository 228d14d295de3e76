package model

import (
	"time"

	"github.com/google/uuid"
)

type ReviewRecommendation string

const (
	RecommendationStrong    ReviewRecommendation = "strongly-recommend"
	RecommendationRecommend ReviewRecommendation = "recommend"
	RecommendationNeutral   ReviewRecommendation = "neutral"
	RecommendationNotSuited ReviewRecommendation = "not-recommended"
)

// Review is the reviewer's assessment of the application. Scores are
// 0-100 per dimension.
type Review struct {
	ReviewerID     uuid.UUID            `json:"reviewer_id,omitempty"`
	Scores         ReviewScores         `json:"scores"`
	Notes          string               `json:"notes,omitempty"`
	Strengths      string               `json:"strengths,omitempty"`
	Concerns       string               `json:"concerns,omitempty"`
	Recommendation ReviewRecommendation `json:"recommendation,omitempty"`
	ReviewedAt     *time.Time           `json:"reviewed_at,omitempty"`
}

type ReviewScores struct {
	Overall           int `json:"overall"`
	SkillMatch        int `json:"skill_match"`
	ExperienceMatch   int `json:"experience_match"`
	MotivationScore   int `json:"motivation_score"`
	AvailabilityMatch int `json:"availability_match"`
}

type ReviewRequest struct {
	Scores         ReviewScores         `json:"scores" binding:"required"`
	Notes          string               `json:"notes" binding:"max=5000"`
	Strengths      string               `json:"strengths" binding:"max=2000"`
	Concerns       string               `json:"concerns" binding:"max=2000"`
	Recommendation ReviewRecommendation `json:"recommendation" binding:"required,oneof=strongly-recommend recommend neutral not-recommended"`
}
