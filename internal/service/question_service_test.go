package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-service/internal/entity"
	"qa-service/internal/service"
	"qa-service/internal/storetest"
)

// seedUser creates a bare user row directly in the store.
func seedUser(t *testing.T, store *storetest.Store, username, email string) *entity.User {
	t.Helper()
	user, err := store.Users().Create(context.Background(), &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return user
}

func TestQuestionOwnership(t *testing.T) {
	ctx := context.Background()
	store := storetest.New()
	questions := service.NewQuestionService(store.Questions())
	alice := seedUser(t, store, "alice", "a@x.com")
	bob := seedUser(t, store, "bob", "b@x.com")

	question, err := questions.CreateQuestion(ctx, alice.ID, "Title", "Body")
	require.NoError(t, err)

	t.Run("non-owner update is forbidden and leaves the row unchanged", func(t *testing.T) {
		_, err := questions.UpdateQuestion(ctx, question.ID, bob.ID, "Hacked", "Hacked")
		assert.ErrorIs(t, err, entity.ErrForbidden)

		unchanged, err := questions.GetQuestion(ctx, question.ID)
		require.NoError(t, err)
		assert.Equal(t, "Title", unchanged.Title)
		assert.Equal(t, "Body", unchanged.Content)
		assert.Nil(t, unchanged.UpdatedAt)
	})

	t.Run("non-owner delete is forbidden", func(t *testing.T) {
		err := questions.DeleteQuestion(ctx, question.ID, bob.ID)
		assert.ErrorIs(t, err, entity.ErrForbidden)

		_, err = questions.GetQuestion(ctx, question.ID)
		assert.NoError(t, err)
	})

	t.Run("owner update sets updated_at", func(t *testing.T) {
		updated, err := questions.UpdateQuestion(ctx, question.ID, alice.ID, "New title", "New body")
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("owner delete removes the question", func(t *testing.T) {
		require.NoError(t, questions.DeleteQuestion(ctx, question.ID, alice.ID))

		_, err := questions.GetQuestion(ctx, question.ID)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("operations on a missing question fail with not found", func(t *testing.T) {
		_, err := questions.UpdateQuestion(ctx, 9999, alice.ID, "t", "c")
		assert.ErrorIs(t, err, entity.ErrNotFound)
		assert.ErrorIs(t, questions.DeleteQuestion(ctx, 9999, alice.ID), entity.ErrNotFound)
	})
}

func TestQuestionCascadeDelete(t *testing.T) {
	ctx := context.Background()
	store := storetest.New()
	questions := service.NewQuestionService(store.Questions())
	answers := service.NewAnswerService(store.Answers(), store.Questions())
	likes := service.NewLikeService(store.Likes(), store.Questions())
	alice := seedUser(t, store, "alice", "a@x.com")
	bob := seedUser(t, store, "bob", "b@x.com")

	question, err := questions.CreateQuestion(ctx, alice.ID, "Title", "Body")
	require.NoError(t, err)
	_, err = answers.CreateAnswer(ctx, bob.ID, question.ID, "An answer")
	require.NoError(t, err)
	require.NoError(t, likes.LikeQuestion(ctx, bob.ID, question.ID))

	require.NoError(t, questions.DeleteQuestion(ctx, question.ID, alice.ID))

	assert.Zero(t, store.OrphanCount(), "cascade delete must leave no orphaned answers or likes")
}

func TestListQuestions(t *testing.T) {
	ctx := context.Background()
	store := storetest.New()
	questions := service.NewQuestionService(store.Questions())
	alice := seedUser(t, store, "alice", "a@x.com")

	for _, title := range []string{"first", "second", "third"} {
		_, err := questions.CreateQuestion(ctx, alice.ID, title, "body")
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		listed, err := questions.ListQuestions(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "third", listed[0].Title)
		assert.Equal(t, "first", listed[2].Title)
	})

	t.Run("skip and limit", func(t *testing.T) {
		listed, err := questions.ListQuestions(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "second", listed[0].Title)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		listed, err := questions.ListQuestions(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, listed, 3)
	})
}
