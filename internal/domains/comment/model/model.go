package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a row in the comments table. Comments have no update or
// delete path; they only accumulate under an article.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
