package entity

import "time"

// Like is the join row between a user and a question. The store enforces
// a unique (user_id, question_id) pair.
type Like struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	QuestionID int       `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}
