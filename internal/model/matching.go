package model

import "time"

// MatchingResult is the compatibility score between volunteer and
// opportunity. AIScore is the weighted aggregate over the factors that
// were actually scored; Reason is a human-readable summary produced by
// whatever populated the factors.
type MatchingResult struct {
	AIScore      int             `json:"ai_score"`
	Factors      MatchingFactors `json:"matching_factors"`
	Reason       string          `json:"reason,omitempty"`
	CalculatedAt *time.Time      `json:"calculated_at,omitempty"`
}

// MatchingFactors holds the five independently scored dimensions. A nil
// factor has not been scored and contributes nothing to the aggregate.
type MatchingFactors struct {
	Skills       *FactorScore `json:"skills,omitempty"`
	Location     *FactorScore `json:"location,omitempty"`
	Availability *FactorScore `json:"availability,omitempty"`
	Experience   *FactorScore `json:"experience,omitempty"`
	Interest     *FactorScore `json:"interest,omitempty"`
}

type FactorScore struct {
	Score  float64 `json:"score"`
	Detail string  `json:"detail,omitempty"`
}

type MatchingFactorsRequest struct {
	Skills       *FactorScore `json:"skills"`
	Location     *FactorScore `json:"location"`
	Availability *FactorScore `json:"availability"`
	Experience   *FactorScore `json:"experience"`
	Interest     *FactorScore `json:"interest"`
	Reason       string       `json:"reason" binding:"max=2000"`
}
