package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-service/internal/entity"
	"qa-service/internal/repository"
)

func TestLikeCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts the pair", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewLikeRepository(db)

		mock.ExpectExec("INSERT INTO likes").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, 7, 3))
	})

	t.Run("duplicate pair maps to already liked", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewLikeRepository(db)

		mock.ExpectExec("INSERT INTO likes").
			WithArgs(7, 3).
			WillReturnError(duplicateEntry("Duplicate entry '7-3' for key 'likes.user_question'"))

		assert.ErrorIs(t, repo.Create(ctx, 7, 3), entity.ErrAlreadyLiked)
	})
}

func TestLikeDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the pair", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewLikeRepository(db)

		mock.ExpectExec("DELETE FROM likes WHERE user_id").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, 7, 3))
	})

	t.Run("never-liked pair maps to like not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewLikeRepository(db)

		mock.ExpectExec("DELETE FROM likes WHERE user_id").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 7, 3), entity.ErrLikeNotFound)
	})
}
