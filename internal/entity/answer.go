package entity

import "time"

type Answer struct {
	ID         int        `json:"id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
	UserID     int        `json:"-"`
	QuestionID int        `json:"question_id"`
	User       User       `json:"user"`
}
