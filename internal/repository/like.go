package repository

import (
	"context"
	"database/sql"

	"qa-service/internal/entity"
)

type LikeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) *LikeRepository {
	return &LikeRepository{db}
}

// Create inserts the (user, question) like row. Duplicates are rejected
// by the unique key, not by a check-then-insert race.
func (r *LikeRepository) Create(ctx context.Context, userID, questionID int) error {
	query := `INSERT INTO likes (user_id, question_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, userID, questionID)
	if isDuplicate(err, "") {
		return entity.ErrAlreadyLiked
	}
	return err
}

func (r *LikeRepository) Delete(ctx context.Context, userID, questionID int) error {
	query := `DELETE FROM likes WHERE user_id = ? AND question_id = ?`
	res, err := r.db.ExecContext(ctx, query, userID, questionID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLikeNotFound
	}
	return nil
}
