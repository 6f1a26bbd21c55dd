package service

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/domains/category/model"
	"blog-backend/internal/domains/category/repository"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 10 * time.Minute
)

type ServiceInterface interface {
	// ListCategories returns all categories ordered by id.
	ListCategories(ctx context.Context) ([]*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        cache.Cache // nil when caching is disabled
}

func NewCategoryService(categoryRepo repository.CategoryRepository, c cache.Cache) ServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        c,
	}
}

// ListCategories serves from cache when possible; categories are
// write-never data so a short TTL is the only invalidation needed.
func (s *categoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if s.cache != nil {
		var cached []*model.Category
		found, err := s.cache.Get(ctx, categoriesCacheKey, &cached)
		if err != nil {
			logger.Error("category cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
			logger.Error("category cache write failed", err)
		}
	}

	return categories, nil
}
