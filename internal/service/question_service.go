package service

import (
	"context"

	"qa-service/internal/entity"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) (*entity.Question, error)
	GetByID(ctx context.Context, id int) (*entity.Question, error)
	List(ctx context.Context, skip, limit int) ([]entity.Question, error)
	ListByUser(ctx context.Context, userID int) ([]entity.Question, error)
	Update(ctx context.Context, id int, title, content string) error
	Delete(ctx context.Context, id int) error
}

type QuestionService struct {
	repo QuestionRepository
}

func NewQuestionService(repo QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, ownerID int, title, content string) (*entity.Question, error) {
	question, err := s.repo.Create(ctx, &entity.Question{
		Title:   title,
		Content: content,
		UserID:  ownerID,
	})
	if err != nil {
		logger.Error().Err(err).Int("user_id", ownerID).Msg("Error creating question")
		return nil, err
	}

	return question, nil
}

// ListQuestions returns a page of questions, newest first.
func (s *QuestionService) ListQuestions(ctx context.Context, skip, limit int) ([]entity.Question, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *QuestionService) ListQuestionsByUser(ctx context.Context, userID int) ([]entity.Question, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id int) (*entity.Question, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateQuestion modifies a question after checking the caller owns it.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id, ownerID int, title, content string) (*entity.Question, error) {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question.UserID != ownerID {
		return nil, entity.ErrForbidden
	}

	if err := s.repo.Update(ctx, id, title, content); err != nil {
		logger.Error().Err(err).Int("question_id", id).Msg("Error updating question")
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// DeleteQuestion removes a question with its answers and likes after
// checking the caller owns it.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id, ownerID int) error {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question.UserID != ownerID {
		return entity.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Int("question_id", id).Msg("Error deleting question")
		return err
	}

	return nil
}
