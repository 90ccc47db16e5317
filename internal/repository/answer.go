package repository

import (
	"context"
	"database/sql"
	"errors"

	"qa-service/internal/entity"
)

const answerColumns = `
	a.id, a.content, a.created_at, a.updated_at, a.question_id,
	u.id, u.username, u.email`

type AnswerRepository struct {
	db *sql.DB
}

func NewAnswerRepository(db *sql.DB) *AnswerRepository {
	return &AnswerRepository{db}
}

func scanAnswer(row interface {
	Scan(dest ...interface{}) error
}) (*entity.Answer, error) {
	answer := &entity.Answer{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&answer.ID, &answer.Content, &answer.CreatedAt, &updatedAt, &answer.QuestionID,
		&answer.User.ID, &answer.User.Username, &answer.User.Email,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		answer.UpdatedAt = &updatedAt.Time
	}
	answer.UserID = answer.User.ID
	return answer, nil
}

func (r *AnswerRepository) Create(ctx context.Context, answer *entity.Answer) (*entity.Answer, error) {
	query := `INSERT INTO answers (content, user_id, question_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, answer.Content, answer.UserID, answer.QuestionID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

func (r *AnswerRepository) GetByID(ctx context.Context, id int) (*entity.Answer, error) {
	query := `SELECT ` + answerColumns + `
		FROM answers a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = ?`
	answer, err := scanAnswer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return answer, nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int) ([]entity.Answer, error) {
	query := `SELECT ` + answerColumns + `
		FROM answers a
		JOIN users u ON u.id = a.user_id
		WHERE a.question_id = ?
		ORDER BY a.created_at ASC, a.id ASC`
	return r.queryAnswers(ctx, query, questionID)
}

func (r *AnswerRepository) ListByUser(ctx context.Context, userID int) ([]entity.Answer, error) {
	query := `SELECT ` + answerColumns + `
		FROM answers a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = ?
		ORDER BY a.created_at DESC, a.id DESC`
	return r.queryAnswers(ctx, query, userID)
}

func (r *AnswerRepository) queryAnswers(ctx context.Context, query string, args ...interface{}) ([]entity.Answer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []entity.Answer{}
	for rows.Next() {
		answer, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, *answer)
	}
	return answers, rows.Err()
}

func (r *AnswerRepository) Update(ctx context.Context, id int, content string) error {
	query := `UPDATE answers SET content = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, content, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
