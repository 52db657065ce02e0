package profile_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{"user_id", "email", "first_name", "last_name", "phone", "channel_name", "bio", "avatar_url", "role", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return sqlx.NewDb(db, "postgres"), mock
}

func Test_Store_Get(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM profiles WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(userID.String(), "a@b.com", "Ada", nil, nil, nil, nil, nil, "viewer", now, now))

	got, err := (&profile.Store{}).Get(context.Background(), db, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "a@b.com", *got.Email)
	assert.Equal(t, "Ada", *got.FirstName)
	assert.Nil(t, got.LastName)
	assert.Equal(t, "viewer", got.Role)
}

func Test_Store_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM profiles")).WillReturnError(sql.ErrNoRows)

	_, err := (&profile.Store{}).Get(context.Background(), db, uuid.New())
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func Test_Store_GetByEmail_CaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM profiles WHERE LOWER(email) = LOWER($1)")).
		WithArgs("Ada@Example.com").
		WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := (&profile.Store{}).GetByEmail(context.Background(), db, "Ada@Example.com")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func Test_Store_Insert_ConflictReturnsExists(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")+".*"+regexp.QuoteMeta("ON CONFLICT DO NOTHING RETURNING *")).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := (&profile.Store{}).Insert(context.Background(), db, &profile.Profile{UserID: uuid.New()})
	assert.ErrorIs(t, err, profile.ErrProfileExists)
}

func Test_Store_Update(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles SET phone = $1, updated_at = current_timestamp WHERE user_id = $2 RETURNING *")).
		WithArgs("+64", userID).
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(userID.String(), nil, nil, nil, "+64", nil, nil, nil, "viewer", now, now))

	got, err := (&profile.Store{}).Update(context.Background(), db, userID, map[string]any{"phone": "+64"})
	require.NoError(t, err)
	assert.Equal(t, "+64", *got.Phone)
}
