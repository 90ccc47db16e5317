package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-service/internal/entity"
	"qa-service/internal/repository"
)

var questionColumns = []string{
	"id", "title", "content", "created_at", "updated_at",
	"uid", "username", "email", "likes_count",
}

func TestQuestionGet(t *testing.T) {
	ctx := context.Background()

	t.Run("joins the owner and computes the like count", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewQuestionRepository(db)
		created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("(?s)SELECT (.+) FROM questions q").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(questionColumns).
				AddRow(3, "Title", "Body", created, nil, 7, "alice", "a@x.com", 2))

		question, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Title", question.Title)
		assert.Equal(t, 7, question.UserID)
		assert.Equal(t, "alice", question.User.Username)
		assert.Equal(t, 2, question.LikesCount)
		assert.Nil(t, question.UpdatedAt)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewQuestionRepository(db)

		mock.ExpectQuery("(?s)SELECT (.+) FROM questions q").
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestQuestionUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("zero affected rows maps to not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewQuestionRepository(db)

		mock.ExpectExec("UPDATE questions SET").
			WithArgs("t", "c", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, 99, "t", "c"), entity.ErrNotFound)
	})
}

func TestQuestionDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes dependents and the question in one transaction", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewQuestionRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM likes WHERE question_id").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM answers WHERE question_id").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM questions WHERE id").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(ctx, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing question rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewQuestionRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM likes WHERE question_id").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM answers WHERE question_id").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM questions WHERE id").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(ctx, 99), entity.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuestionList(t *testing.T) {
	ctx := context.Background()

	t.Run("passes limit and offset through", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewQuestionRepository(db)
		created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("(?s)SELECT (.+) FROM questions q(.+)ORDER BY q.created_at DESC").
			WithArgs(10, 5).
			WillReturnRows(sqlmock.NewRows(questionColumns).
				AddRow(2, "Second", "b", created.Add(time.Hour), nil, 7, "alice", "a@x.com", 0).
				AddRow(1, "First", "a", created, nil, 7, "alice", "a@x.com", 1))

		questions, err := repo.List(ctx, 5, 10)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "Second", questions[0].Title)
		assert.Equal(t, 1, questions[1].LikesCount)
	})
}
