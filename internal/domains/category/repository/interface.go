package repository

import (
	"context"

	"blog-backend/internal/domains/category/model"
)

type CategoryRepository interface {
	// ListAll returns all categories ordered by id.
	ListAll(ctx context.Context) ([]*model.Category, error)
}
