package service

import (
	"context"

	"qa-service/internal/entity"
)

type LikeRepository interface {
	Create(ctx context.Context, userID, questionID int) error
	Delete(ctx context.Context, userID, questionID int) error
}

type LikeService struct {
	repo      LikeRepository
	questions QuestionRepository
}

func NewLikeService(repo LikeRepository, questions QuestionRepository) *LikeService {
	return &LikeService{repo: repo, questions: questions}
}

// LikeQuestion records a like. Liking twice fails with ErrAlreadyLiked,
// liking a missing question with ErrNotFound.
func (s *LikeService) LikeQuestion(ctx context.Context, userID, questionID int) error {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, userID, questionID); err != nil {
		if err != entity.ErrAlreadyLiked {
			logger.Error().Err(err).Int("question_id", questionID).Msg("Error creating like")
		}
		return err
	}

	return nil
}

// UnlikeQuestion removes a like; a pair that was never liked fails with
// ErrLikeNotFound.
func (s *LikeService) UnlikeQuestion(ctx context.Context, userID, questionID int) error {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, questionID)
}
