package repository

import (
	"context"
	"errors"
	"testing"

	"chirp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestEngagementRepository_AddIsConflictSafe(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	// Membership is enforced in the store, not by a read-modify-write.
	mock.ExpectExec(`INSERT INTO engagements .* ON CONFLICT \(user_id, tweet_id, kind\) DO NOTHING`).
		WithArgs(uint(2), uint(10), models.EngagementLike, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Add(ctx, 2, 10, models.EngagementLike)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementRepository_AddDuplicateIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)

	// A duplicate insert affects zero rows and still succeeds.
	mock.ExpectExec(`INSERT INTO engagements`).
		WithArgs(uint(2), uint(10), models.EngagementRetweet, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Add(context.Background(), 2, 10, models.EngagementRetweet)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementRepository_Remove(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "engagements"`).
		WithArgs(uint(2), uint(10), models.EngagementBookmark).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Remove(context.Background(), 2, 10, models.EngagementBookmark)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementRepository_IsEngaged(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "engagements"`).
		WithArgs(uint(2), uint(10), models.EngagementLike).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	engaged, err := repo.IsEngaged(context.Background(), 2, 10, models.EngagementLike)
	require.NoError(t, err)
	assert.True(t, engaged)
}

func TestEngagementRepository_Count(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "engagements"`).
		WithArgs(uint(10), models.EngagementLike).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background(), 10, models.EngagementLike)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestEngagementRepository_EngagedTweetIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)

	t.Run("empty input short-circuits", func(t *testing.T) {
		engagements, err := repo.EngagedTweetIDs(context.Background(), 2, nil)
		require.NoError(t, err)
		assert.Nil(t, engagements)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns rows", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "tweet_id", "kind"}).
			AddRow(1, 2, 10, "like").
			AddRow(2, 2, 11, "bookmark")
		mock.ExpectQuery(`SELECT \* FROM "engagements"`).
			WithArgs(uint(2), uint(10), uint(11)).
			WillReturnRows(rows)

		engagements, err := repo.EngagedTweetIDs(context.Background(), 2, []uint{10, 11})
		require.NoError(t, err)
		require.Len(t, engagements, 2)
		assert.Equal(t, models.EngagementLike, engagements[0].Kind)
		assert.Equal(t, uint(11), engagements[1].TweetID)
	})
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.True(t, IsUniqueConstraintError(errors.New(`duplicate key value violates unique constraint "idx_user_tweet_kind"`)))
	assert.True(t, IsUniqueConstraintError(errors.New("SQLSTATE 23505")))
	assert.True(t, IsUniqueConstraintError(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsUniqueConstraintError(errors.New("connection refused")))
	assert.False(t, IsUniqueConstraintError(nil))
}
