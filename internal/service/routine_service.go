package service

import (
	"context"
	"errors"
	"strings"

	"skincare-api/internal/metrics"
	"skincare-api/internal/model"
	"skincare-api/internal/repository"
	"skincare-api/internal/routine"

	"github.com/rs/zerolog"
)

// routineService implements RoutineService.
type routineService struct {
	productRepo repository.ProductRepository
	planner     *routine.Planner
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewRoutineService creates a new routine service. metrics may be nil.
func NewRoutineService(
	productRepo repository.ProductRepository,
	planner *routine.Planner,
	m *metrics.Metrics,
	logger zerolog.Logger,
) RoutineService {
	return &routineService{
		productRepo: productRepo,
		planner:     planner,
		metrics:     m,
		logger:      logger.With().Str("service", "routine").Logger(),
	}
}

// Generate builds a routine from a fresh catalogue snapshot.
func (s *routineService) Generate(ctx context.Context, req *model.RoutineRequest) (*model.Routine, error) {
	if req == nil {
		s.metrics.ObserveRoutine(metrics.OutcomeInvalidRequest)
		return nil, model.NewValidationError("skin_type is required; concern is required")
	}

	normalised := model.RoutineRequest{
		SkinType: strings.TrimSpace(req.SkinType),
		Concern:  strings.TrimSpace(req.Concern),
	}
	if err := validateStruct(normalised); err != nil {
		s.metrics.ObserveRoutine(metrics.OutcomeInvalidRequest)
		return nil, err
	}

	snapshot, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to retrieve catalogue snapshot")
		s.metrics.ObserveRoutine(metrics.OutcomeStoreError)
		return nil, model.NewStoreError("Failed to retrieve products.", err)
	}

	plan, err := s.planner.Plan(snapshot, normalised.SkinType, normalised.Concern)
	if err != nil {
		outcome := metrics.OutcomeNoMatch
		if errors.Is(err, model.ErrNoProducts) {
			outcome = metrics.OutcomeNoProducts
		}
		s.metrics.ObserveRoutine(outcome)
		s.logger.Warn().
			Str("skin_type", normalised.SkinType).
			Str("concern", normalised.Concern).
			Int("catalogue_size", len(snapshot)).
			Err(err).
			Msg("no routine generated")
		return nil, err
	}

	s.metrics.ObserveRoutine(metrics.OutcomeSuccess)
	s.logger.Info().
		Str("skin_type", normalised.SkinType).
		Str("concern", normalised.Concern).
		Int("morning_steps", len(plan.Morning)).
		Int("night_steps", len(plan.Night)).
		Msg("routine generated")

	return &plan, nil
}
