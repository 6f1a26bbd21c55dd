package repository

import (
	"context"

	"blog-backend/internal/domains/comment/model"
)

type CommentRepository interface {
	// Create inserts the comment and fills in the generated id and
	// timestamp.
	Create(ctx context.Context, comment *model.Comment) error

	// ListByPost returns the comments of an article, newest first.
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
