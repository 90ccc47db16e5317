package service

import (
	"context"

	"qa-service/internal/entity"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) (*entity.Answer, error)
	GetByID(ctx context.Context, id int) (*entity.Answer, error)
	ListByQuestion(ctx context.Context, questionID int) ([]entity.Answer, error)
	ListByUser(ctx context.Context, userID int) ([]entity.Answer, error)
	Update(ctx context.Context, id int, content string) error
	Delete(ctx context.Context, id int) error
}

type AnswerService struct {
	repo      AnswerRepository
	questions QuestionRepository
}

func NewAnswerService(repo AnswerRepository, questions QuestionRepository) *AnswerService {
	return &AnswerService{repo: repo, questions: questions}
}

// CreateAnswer posts an answer to an existing question. The question is
// looked up first so a missing parent fails with ErrNotFound instead of
// a foreign-key violation.
func (s *AnswerService) CreateAnswer(ctx context.Context, ownerID, questionID int, content string) (*entity.Answer, error) {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer, err := s.repo.Create(ctx, &entity.Answer{
		Content:    content,
		UserID:     ownerID,
		QuestionID: questionID,
	})
	if err != nil {
		logger.Error().Err(err).Int("question_id", questionID).Msg("Error creating answer")
		return nil, err
	}

	return answer, nil
}

func (s *AnswerService) ListAnswers(ctx context.Context, questionID int) ([]entity.Answer, error) {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.repo.ListByQuestion(ctx, questionID)
}

func (s *AnswerService) ListAnswersByUser(ctx context.Context, userID int) ([]entity.Answer, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateAnswer modifies an answer after checking the caller owns it.
func (s *AnswerService) UpdateAnswer(ctx context.Context, id, ownerID int, content string) (*entity.Answer, error) {
	answer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer.UserID != ownerID {
		return nil, entity.ErrForbidden
	}

	if err := s.repo.Update(ctx, id, content); err != nil {
		logger.Error().Err(err).Int("answer_id", id).Msg("Error updating answer")
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// DeleteAnswer removes an answer after checking the caller owns it.
func (s *AnswerService) DeleteAnswer(ctx context.Context, id, ownerID int) error {
	answer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if answer.UserID != ownerID {
		return entity.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Int("answer_id", id).Msg("Error deleting answer")
		return err
	}

	return nil
}
