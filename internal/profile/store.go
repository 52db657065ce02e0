package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/database"
)

var (
	ErrProfileNotFound = errors.New("profile does not exist")
	ErrProfileExists   = errors.New("profile already exists")

	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

type (
	Profile struct {
		UserID      uuid.UUID `db:"user_id" json:"user_id"`
		Email       *string   `db:"email" json:"email"`
		FirstName   *string   `db:"first_name" json:"first_name"`
		LastName    *string   `db:"last_name" json:"last_name"`
		Phone       *string   `db:"phone" json:"phone"`
		ChannelName *string   `db:"channel_name" json:"channel_name"`
		Bio         *string   `db:"bio" json:"bio"`
		AvatarURL   *string   `db:"avatar_url" json:"avatar_url"`
		Role        string    `db:"role" json:"role"`
		CreatedAt   time.Time `db:"created_at" json:"created_at"`
		UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	}

	Store struct{}
)

func (store *Store) Get(ctx context.Context, db database.Queryable, userID uuid.UUID) (*Profile, error) {
	query, args, err := psql.Select("*").From("profiles").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select profile query: %w", err)
	}

	var profile Profile
	if err := db.GetContext(ctx, &profile, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}

		return nil, fmt.Errorf("failed to select profile for user %s: %w", userID, err)
	}

	return &profile, nil
}

func (store *Store) GetByEmail(ctx context.Context, db database.Queryable, email string) (*Profile, error) {
	query, args, err := psql.Select("*").From("profiles").Where("LOWER(email) = LOWER(?)", email).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select profile query: %w", err)
	}

	var profile Profile
	if err := db.GetContext(ctx, &profile, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}

		return nil, fmt.Errorf("failed to select profile by email: %w", err)
	}

	return &profile, nil
}

// Insert creates a new profile row. If any conflicting row already exists (either
// for the same user, or the same email) then ErrProfileExists is returned and
// nothing is written.
func (store *Store) Insert(ctx context.Context, db database.Queryable, profile *Profile) (*Profile, error) {
	query, args, err := psql.
		Insert("profiles").
		Columns("user_id", "email", "first_name", "last_name", "phone", "created_at", "updated_at").
		Values(profile.UserID, profile.Email, profile.FirstName, profile.LastName, profile.Phone, squirrel.Expr("current_timestamp"), squirrel.Expr("current_timestamp")).
		Suffix("ON CONFLICT DO NOTHING RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct insert profile query: %w", err)
	}

	var created Profile
	if err := db.GetContext(ctx, &created, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrProfileExists
		}

		return nil, fmt.Errorf("failed to insert profile for user %s: %w", profile.UserID, err)
	}

	return &created, nil
}

// Update applies the column/value pairs provided to the profile for the user. The
// caller is responsible for ensuring the columns are safe to update.
func (store *Store) Update(ctx context.Context, db database.Queryable, userID uuid.UUID, fields map[string]any) (*Profile, error) {
	query, args, err := psql.
		Update("profiles").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("current_timestamp")).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct update profile query: %w", err)
	}

	var updated Profile
	if err := db.GetContext(ctx, &updated, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}

		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}

	return &updated, nil
}
