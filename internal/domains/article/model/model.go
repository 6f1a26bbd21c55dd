package model

import (
	"time"

	"github.com/google/uuid"
)

// Article is a row in the posts table. UserID is the owner and never
// changes after creation; only the owner may update or delete the row.
type Article struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CategoryID int       `json:"category_id"`
	Title      *string   `json:"title"`
	Content    string    `json:"content"`
	ImagePath  string    `json:"image_path"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID created this article.
func (a *Article) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}
