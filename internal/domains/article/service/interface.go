package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
)

type ServiceInterface interface {
	// GetArticle gets an article by id.
	GetArticle(ctx context.Context, id int64) (*model.Article, error)

	// CreateArticle validates the form, uploads the image and inserts
	// the row owned by userID.
	CreateArticle(ctx context.Context, userID uuid.UUID, req model.CreateArticleRequest) (*model.Article, error)

	// UpdateArticle mutates an existing article after the ownership
	// check. A new image replaces the stored one; otherwise the
	// existing image reference is retained.
	UpdateArticle(ctx context.Context, userID uuid.UUID, id int64, req model.UpdateArticleRequest) error

	// DeleteArticle removes an owned article and schedules its image
	// for cleanup.
	DeleteArticle(ctx context.Context, userID uuid.UUID, id int64) error

	// ListArticles returns all articles, newest first.
	ListArticles(ctx context.Context) ([]*model.Article, error)
}

// TaskEnqueuer hands deferred work to the background worker.
type TaskEnqueuer interface {
	EnqueueDeleteImage(ctx context.Context, imagePath string) error
}
