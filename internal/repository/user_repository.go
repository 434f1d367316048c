package repository

import (
	"context"

	"ai-travel-planner/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert ensures a profile row exists for the authenticated principal.
// The id comes from the auth provider, so conflicts mean the profile is
// already there; the email is refreshed in case it changed.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "email", "created_at").
		Values(user.ID, user.Email, user.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
