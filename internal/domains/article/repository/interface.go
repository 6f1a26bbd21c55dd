package repository

import (
	"context"

	"blog-backend/internal/domains/article/model"
)

type ArticleRepository interface {
	// Create inserts the article and fills in the generated id and
	// timestamps.
	Create(ctx context.Context, article *model.Article) error

	// GetByID gets an article by id, model.ErrArticleNotFound when no
	// row matches.
	GetByID(ctx context.Context, id int64) (*model.Article, error)

	// Update rewrites the mutable columns and stamps updated_at.
	Update(ctx context.Context, article *model.Article) error

	// Delete removes the row.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every article, newest first.
	ListAll(ctx context.Context) ([]*model.Article, error)
}
