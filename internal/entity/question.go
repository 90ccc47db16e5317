package entity

import "time"

type Question struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	UserID    int        `json:"-"`
	User      User       `json:"user"`

	// LikesCount is computed from the likes table at read time, never stored.
	LikesCount int `json:"likes_count"`
}
