package repository

import (
	"context"
	"database/sql"
	"errors"

	"qa-service/internal/entity"
)

// questionColumns is the shared projection for question reads: the row,
// its owner, and the live like count.
const questionColumns = `
	q.id, q.title, q.content, q.created_at, q.updated_at,
	u.id, u.username, u.email,
	(SELECT COUNT(*) FROM likes l WHERE l.question_id = q.id)`

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db}
}

func scanQuestion(row interface {
	Scan(dest ...interface{}) error
}) (*entity.Question, error) {
	question := &entity.Question{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&question.ID, &question.Title, &question.Content, &question.CreatedAt, &updatedAt,
		&question.User.ID, &question.User.Username, &question.User.Email,
		&question.LikesCount,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		question.UpdatedAt = &updatedAt.Time
	}
	question.UserID = question.User.ID
	return question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *entity.Question) (*entity.Question, error) {
	query := `INSERT INTO questions (title, content, user_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, question.Title, question.Content, question.UserID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*entity.Question, error) {
	query := `SELECT ` + questionColumns + `
		FROM questions q
		JOIN users u ON u.id = q.user_id
		WHERE q.id = ?`
	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return question, nil
}

func (r *QuestionRepository) List(ctx context.Context, skip, limit int) ([]entity.Question, error) {
	query := `SELECT ` + questionColumns + `
		FROM questions q
		JOIN users u ON u.id = q.user_id
		ORDER BY q.created_at DESC, q.id DESC
		LIMIT ? OFFSET ?`
	return r.queryQuestions(ctx, query, limit, skip)
}

func (r *QuestionRepository) ListByUser(ctx context.Context, userID int) ([]entity.Question, error) {
	query := `SELECT ` + questionColumns + `
		FROM questions q
		JOIN users u ON u.id = q.user_id
		WHERE q.user_id = ?
		ORDER BY q.created_at DESC, q.id DESC`
	return r.queryQuestions(ctx, query, userID)
}

func (r *QuestionRepository) queryQuestions(ctx context.Context, query string, args ...interface{}) ([]entity.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []entity.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) Update(ctx context.Context, id int, title, content string) error {
	query := `UPDATE questions SET title = ?, content = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, title, content, id)
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

// Delete removes a question and its dependents in one transaction. The
// dependents are deleted explicitly rather than trusting the schema's
// declarative cascade alone.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM likes WHERE question_id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM answers WHERE question_id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return entity.ErrNotFound
	}

	return tx.Commit()
}
