package video_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/video"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var videoColumns = []string{
	"id", "owner_id", "title", "description", "category", "synopsis", "visibility", "is_18_plus", "rating",
	"monetization_id", "trailer_path", "video_path", "status", "published_at", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return sqlx.NewDb(db, "postgres"), mock
}

func videoRow(id uuid.UUID, status video.Status, videoPath any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(videoColumns).
		AddRow(id.String(), uuid.NewString(), "Film", "", "movie", nil, "private", false, nil, nil, nil, videoPath, string(status), nil, now, now)
}

func Test_Store_Get(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM videos WHERE id=$1")).
		WithArgs(id).
		WillReturnRows(videoRow(id, video.StatusDetailed, nil))

	got, err := (&video.Store{}).Get(context.Background(), db, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, video.StatusDetailed, got.Status)
	assert.Nil(t, got.VideoPath)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM videos")).WillReturnError(sql.ErrNoRows)
	_, err = (&video.Store{}).Get(context.Background(), db, id)
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
}

func Test_Store_Update(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE videos SET video_path = $1, updated_at = current_timestamp WHERE id = $2 RETURNING *")).
		WithArgs("a/original.mp4", id).
		WillReturnRows(videoRow(id, video.StatusMediaAttached, "a/original.mp4"))

	got, err := (&video.Store{}).Update(context.Background(), db, id, map[string]any{"video_path": "a/original.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "a/original.mp4", *got.VideoPath)
}

func Test_Store_AdvanceStatus(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET status=$2::video_status, updated_at=current_timestamp WHERE id=$1 AND status=$3::video_status")).
		WithArgs(id, video.StatusMediaAttached, video.StatusDetailed).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, (&video.Store{}).AdvanceStatus(context.Background(), db, id, video.StatusMediaAttached))

	// A video at any other status is left alone
	mock.ExpectExec(regexp.QuoteMeta("AND status=$3::video_status")).
		WithArgs(id, video.StatusMonetized, video.StatusMediaAttached).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, (&video.Store{}).AdvanceStatus(context.Background(), db, id, video.StatusMonetized))

	assert.Error(t, (&video.Store{}).AdvanceStatus(context.Background(), db, id, video.StatusDraft))
}

func Test_Store_ReplaceGenres(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	genres := []string{"Drama", "Comedy"}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM video_genres WHERE video_id=$1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO genres(name) SELECT UNNEST($1::TEXT[])")).WithArgs(pq.Array(genres)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO video_genres(video_id, genre_id)")).WithArgs(id, pq.Array(genres)).WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, (&video.Store{}).ReplaceGenres(context.Background(), db, id, genres))
}

func Test_Store_ReplaceGenres_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM video_genres")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, (&video.Store{}).ReplaceGenres(context.Background(), db, id, nil))
}

func Test_Store_ReplaceCrew(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM crew_members WHERE video_id=$1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO crew_roles(name) VALUES ($1)")).WithArgs("Director").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO crew_members(id, video_id, name, role_id)")).
		WithArgs(sqlmock.AnyArg(), id, "Grace", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, (&video.Store{}).ReplaceCrew(context.Background(), db, id, []video.CrewMember{{Name: "Grace", Role: "Director"}}))
}

func Test_Store_GetArtwork_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM video_artworks WHERE video_id=$1 AND width=$2 AND height=$3")).
		WithArgs(id, 1280, 720).
		WillReturnError(sql.ErrNoRows)

	_, err := (&video.Store{}).GetArtwork(context.Background(), db, id, 1280, 720)
	assert.ErrorIs(t, err, video.ErrArtworkNotFound)
}

func Test_Store_UploadSession(t *testing.T) {
	db, mock := newMockDB(t)
	store := &video.Store{}

	mock.ExpectQuery(regexp.QuoteMeta("FROM upload_sessions WHERE fingerprint=$1")).WithArgs("fp").WillReturnError(sql.ErrNoRows)
	session, err := store.GetUploadSession(context.Background(), db, "fp")
	require.NoError(t, err)
	assert.Nil(t, session)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO upload_sessions")).
		WithArgs("fp", "upload-1", "videos", "a/original.mp4").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.PutUploadSession(context.Background(), db, &video.UploadSession{Fingerprint: "fp", UploadID: "upload-1", Bucket: "videos", ObjectKey: "a/original.mp4"}))

	mock.ExpectQuery(regexp.QuoteMeta("FROM upload_sessions WHERE fingerprint=$1")).
		WithArgs("fp").
		WillReturnRows(sqlmock.NewRows([]string{"fingerprint", "upload_id", "bucket", "object_key"}).AddRow("fp", "upload-1", "videos", "a/original.mp4"))
	session, err = store.GetUploadSession(context.Background(), db, "fp")
	require.NoError(t, err)
	assert.Equal(t, "upload-1", session.UploadID)
}
