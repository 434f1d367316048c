package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-travel-planner/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrTripInsert     = errors.New("trip insert failed")
	ErrActivityInsert = errors.New("activity insert failed")
	ErrTripNotFound   = errors.New("trip not found")
)

type TripRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTripRepository(db *pgxpool.Pool, logger *zap.Logger) *TripRepository {
	return &TripRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithActivities writes the trip row and its flattened activity
// rows in a single transaction, so a failed activity insert never leaves
// an orphaned trip behind. The two inserts stay distinguishable through
// ErrTripInsert and ErrActivityInsert.
func (r *TripRepository) CreateWithActivities(ctx context.Context, trip *models.Trip, activities []*models.Activity) error {
	weatherJSON, err := marshalNullable(trip.WeatherData)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}
	suggestionsJSON, err := marshalNullable(trip.AISuggestions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}
	costJSON, err := marshalNullable(trip.CostEstimate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}
	packingJSON, err := marshalNullable(trip.PackingList)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}
	defer tx.Rollback(ctx)

	query := squirrel.Insert("trips").
		Columns("id", "user_id", "destination", "duration", "budget", "travel_style", "description",
			"weather_data", "ai_suggestions", "cost_estimate", "packing_list", "created_at").
		Values(trip.ID, trip.UserID, trip.Destination, trip.Duration, trip.Budget, trip.TravelStyle,
			trip.Description, weatherJSON, suggestionsJSON, costJSON, packingJSON, trip.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrTripInsert, err)
	}

	if err := insertActivities(ctx, tx, activities); err != nil {
		return fmt.Errorf("%w: %v", ErrActivityInsert, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrActivityInsert, err)
	}

	return nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	query := squirrel.Select("id", "user_id", "destination", "duration", "budget", "travel_style", "description", "created_at").
		From("trips").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(
			&trip.ID, &trip.UserID, &trip.Destination, &trip.Duration, &trip.Budget,
			&trip.TravelStyle, &trip.Description, &trip.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}

func (r *TripRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error) {
	query := squirrel.Select("id", "user_id", "destination", "duration", "budget", "travel_style", "description",
		"weather_data", "ai_suggestions", "cost_estimate", "packing_list", "created_at").
		From("trips").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		trip            models.Trip
		weatherJSON     []byte
		suggestionsJSON []byte
		costJSON        []byte
		packingJSON     []byte
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&trip.ID, &trip.UserID, &trip.Destination, &trip.Duration, &trip.Budget,
		&trip.TravelStyle, &trip.Description,
		&weatherJSON, &suggestionsJSON, &costJSON, &packingJSON, &trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if err := unmarshalNullable(weatherJSON, &trip.WeatherData); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(suggestionsJSON, &trip.AISuggestions); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(costJSON, &trip.CostEstimate); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(packingJSON, &trip.PackingList); err != nil {
		return nil, err
	}

	return &trip, nil
}

func marshalNullable(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case *models.WeatherForecast:
		if val == nil {
			return nil, nil
		}
	case *models.AISuggestion:
		if val == nil {
			return nil, nil
		}
	case *models.CostEstimate:
		if val == nil {
			return nil, nil
		}
	case []models.PackingItem:
		if val == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func unmarshalNullable(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
