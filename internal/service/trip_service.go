package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-travel-planner/internal/models"
	"ai-travel-planner/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collaborator interfaces for the generation pipeline; each stage is
// independently testable with a fake.
type SuggestionGenerator interface {
	Generate(ctx context.Context, prefs *models.TripPreferences) (*models.AISuggestion, error)
}

type ForecastFetcher interface {
	Forecast(ctx context.Context, location string, days int) (*models.WeatherForecast, error)
}

type ProfileStore interface {
	Upsert(ctx context.Context, user *models.User) error
}

type TripStore interface {
	CreateWithActivities(ctx context.Context, trip *models.Trip, activities []*models.Activity) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error)
}

type ActivityStore interface {
	GetByTripID(ctx context.Context, tripID uuid.UUID) ([]*models.Activity, error)
}

// TripService runs the trip generation pipeline: authenticate, ensure
// profile, generate suggestions, fetch forecast, persist, assemble.
// Stages are strictly sequential; the first failure aborts the request.
type TripService struct {
	users       ProfileStore
	suggestions SuggestionGenerator
	weather     ForecastFetcher
	trips       TripStore
	activities  ActivityStore
	logger      *zap.Logger
}

func NewTripService(
	users ProfileStore,
	suggestions SuggestionGenerator,
	weather ForecastFetcher,
	trips TripStore,
	activities ActivityStore,
	logger *zap.Logger,
) *TripService {
	return &TripService{
		users:       users,
		suggestions: suggestions,
		weather:     weather,
		trips:       trips,
		activities:  activities,
		logger:      logger,
	}
}

// GenerateTrip executes the pipeline for one preferences submission.
// There is no compensation beyond the transactional trip+activities
// write and no idempotency key: resubmitting after a failure creates a
// new trip.
func (s *TripService) GenerateTrip(ctx context.Context, principal models.Principal, prefs *models.TripPreferences) (*models.Trip, error) {
	// Stage 1: the request must be attributable to a principal before
	// any paid API call is made.
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}

	// Stage 2: ensure the profile row exists.
	now := time.Now()
	user := &models.User{
		ID:        principal.UserID,
		Email:     principal.Email,
		CreatedAt: now,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		s.logger.Error("Failed to ensure user profile", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProfilePersist, err)
	}

	// Stage 3: one LLM call.
	suggestion, err := s.suggestions.Generate(ctx, prefs)
	if err != nil {
		s.logger.Error("Failed to generate trip suggestions", zap.Error(err))
		if errors.Is(err, ErrSuggestionGeneration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrSuggestionGeneration, err)
	}

	// Stage 4: forecast for the destination the LLM resolved, horizon =
	// trip duration.
	forecast, err := s.weather.Forecast(ctx, suggestion.Destination, prefs.Duration)
	if err != nil {
		s.logger.Error("Failed to fetch weather forecast", zap.Error(err))
		if errors.Is(err, ErrForecastFetch) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrForecastFetch, err)
	}

	// Stages 5-6: trip row plus flattened activity rows, atomically.
	trip := &models.Trip{
		ID:            uuid.New(),
		UserID:        principal.UserID,
		Destination:   suggestion.Destination,
		Duration:      prefs.Duration,
		Budget:        prefs.Budget,
		TravelStyle:   prefs.TravelStyle,
		Description:   prefs.Description,
		WeatherData:   forecast,
		AISuggestions: suggestion,
		CostEstimate:  suggestion.CostEstimate,
		PackingList:   suggestion.PackingList,
		CreatedAt:     now,
	}
	activities := flattenActivities(trip.ID, suggestion.Activities, now)

	if err := s.trips.CreateWithActivities(ctx, trip, activities); err != nil {
		s.logger.Error("Failed to persist trip", zap.Error(err))
		if errors.Is(err, repository.ErrActivityInsert) {
			return nil, fmt.Errorf("%w: %v", ErrActivityPersist, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTripPersist, err)
	}

	// Stage 7: the persisted entity doubles as the view model.
	s.logger.Info("Trip generated",
		zap.String("trip_id", trip.ID.String()),
		zap.String("destination", trip.Destination),
		zap.Int("duration", trip.Duration),
		zap.Int("activity_rows", len(activities)),
	)

	return trip, nil
}

// flattenActivities denormalizes each day's items into flat rows tagged
// with trip id and day number.
func flattenActivities(tripID uuid.UUID, days []models.TripDay, now time.Time) []*models.Activity {
	var rows []*models.Activity
	for _, day := range days {
		for _, item := range day.Items {
			rows = append(rows, &models.Activity{
				ID:        uuid.New(),
				TripID:    tripID,
				Day:       day.Day,
				Type:      item.Type,
				Name:      item.Name,
				Time:      item.Time,
				CreatedAt: now,
			})
		}
	}
	return rows
}

func (s *TripService) ListTrips(ctx context.Context, principal models.Principal) ([]*models.Trip, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	return s.trips.ListByUser(ctx, principal.UserID)
}

func (s *TripService) GetTrip(ctx context.Context, principal models.Principal, tripID uuid.UUID) (*models.Trip, []*models.Activity, error) {
	if principal.IsZero() {
		return nil, nil, ErrUnauthenticated
	}

	trip, err := s.trips.GetByID(ctx, tripID, principal.UserID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.activities.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}

	return trip, rows, nil
}
