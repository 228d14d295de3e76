package matching

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/clock"
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/metrics"
)

// FactorWeight binds one matching dimension to its fixed share of the
// aggregate score. The weights sum to 1.00.
type FactorWeight struct {
	Name   string
	Weight float64
	Get    func(f *model.MatchingFactors) *model.FactorScore
}

// Weights is the fixed, ordered factor table.
var Weights = []FactorWeight{
	{"skills", 0.30, func(f *model.MatchingFactors) *model.FactorScore { return f.Skills }},
	{"location", 0.20, func(f *model.MatchingFactors) *model.FactorScore { return f.Location }},
	{"availability", 0.25, func(f *model.MatchingFactors) *model.FactorScore { return f.Availability }},
	{"experience", 0.15, func(f *model.MatchingFactors) *model.FactorScore { return f.Experience }},
	{"interest", 0.10, func(f *model.MatchingFactors) *model.FactorScore { return f.Interest }},
}

// Score computes the weighted average over the factors that are
// present, renormalized by the sum of the weights actually used. An
// application scored on no factors yields 0. Rounding is to the nearest
// integer, ties away from zero.
func Score(factors *model.MatchingFactors) int {
	var totalWeighted, totalWeight float64
	for _, fw := range Weights {
		fs := fw.Get(factors)
		if fs == nil {
			continue
		}
		totalWeighted += fs.Score * fw.Weight
		totalWeight += fw.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(totalWeighted / totalWeight))
}

// Service is the matching engine. It only ever touches the matching
// sub-record of the aggregate.
type Service struct {
	repo    repository.ApplicationRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewService(repo repository.ApplicationRepository, clk clock.Clock, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		clock:   clk,
		metrics: m,
	}
}

// Calculate recomputes the aggregate score from the stored factors and
// stamps the computation time. Recomputation always overwrites the
// prior score and timestamp.
func (s *Service) Calculate(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	app.Matching.AIScore = Score(&app.Matching.Factors)
	app.Matching.CalculatedAt = &now

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.MatchComputations.Inc()
	}
	return app, nil
}

// SetFactors replaces the factor breakdown and recomputes the score in
// the same aggregate write.
func (s *Service) SetFactors(ctx context.Context, id uuid.UUID, req *model.MatchingFactorsRequest) (*model.Application, error) {
	factors := model.MatchingFactors{
		Skills:       req.Skills,
		Location:     req.Location,
		Availability: req.Availability,
		Experience:   req.Experience,
		Interest:     req.Interest,
	}
	if err := validateFactors(&factors); err != nil {
		return nil, apperrors.BadRequest(err.Error(), nil)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	app.Matching.Factors = factors
	app.Matching.Reason = req.Reason
	app.Matching.AIScore = Score(&factors)
	app.Matching.CalculatedAt = &now

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.MatchComputations.Inc()
	}
	return app, nil
}

func validateFactors(factors *model.MatchingFactors) error {
	for _, fw := range Weights {
		fs := fw.Get(factors)
		if fs == nil {
			continue
		}
		if fs.Score < 0 || fs.Score > 100 {
			return &factorRangeError{name: fw.Name}
		}
	}
	return nil
}

type factorRangeError struct {
	name string
}

func (e *factorRangeError) Error() string {
	return e.name + " score must be between 0 and 100"
}
