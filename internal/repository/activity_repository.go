package repository

import (
	"context"

	"ai-travel-planner/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ActivityRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewActivityRepository(db *pgxpool.Pool, logger *zap.Logger) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ActivityRepository) GetByTripID(ctx context.Context, tripID uuid.UUID) ([]*models.Activity, error) {
	query := squirrel.Select("id", "trip_id", "day", "type", "name", "time", "created_at").
		From("activities").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("day ASC", "time ASC").
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

	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.TripID, &a.Day, &a.Type, &a.Name, &a.Time, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}

	return activities, rows.Err()
}

// insertActivities bulk inserts the flattened itinerary rows inside the
// trip transaction.
func insertActivities(ctx context.Context, tx pgx.Tx, activities []*models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	builder := squirrel.Insert("activities").
		Columns("id", "trip_id", "day", "type", "name", "time", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, a := range activities {
		builder = builder.Values(a.ID, a.TripID, a.Day, a.Type, a.Name, a.Time, a.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}
