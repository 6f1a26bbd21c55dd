package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/article/repository"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/logger"
)

type articleService struct {
	articleRepo repository.ArticleRepository
	storage     storage.ObjectStorage
	validator   *storage.ImageValidator
	tasks       TaskEnqueuer // nil when no worker is deployed
}

func NewArticleService(
	articleRepo repository.ArticleRepository,
	objectStorage storage.ObjectStorage,
	validator *storage.ImageValidator,
	tasks TaskEnqueuer,
) ServiceInterface {
	return &articleService{
		articleRepo: articleRepo,
		storage:     objectStorage,
		validator:   validator,
		tasks:       tasks,
	}
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrArticleNotFound {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func (s *articleService) CreateArticle(
	ctx context.Context,
	userID uuid.UUID,
	req model.CreateArticleRequest,
) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	if err := s.validator.Validate(req.Image.Data); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	imagePath, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	// A failed insert from here on leaves the uploaded object behind.
	// Known gap: there is no compensation step, matching the delete
	// path being the only cleanup trigger.
	article := &model.Article{
		UserID:     userID,
		CategoryID: req.CategoryIDValue(),
		Title:      req.Title,
		Content:    req.Content,
		ImagePath:  imagePath,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

func (s *articleService) UpdateArticle(
	ctx context.Context,
	userID uuid.UUID,
	id int64,
	req model.UpdateArticleRequest,
) error {
	// Existence is confirmed before ownership, ownership before any
	// validation of the new content or any write.
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrArticleNotFound {
			return model.NewArticleNotFoundError()
		}
		return fmt.Errorf("failed to get article: %w", err)
	}

	if !article.IsOwnedBy(userID) {
		return model.NewForbiddenError()
	}

	if err := req.Validate(); err != nil {
		return model.NewInvalidInputError(err.Error())
	}

	imagePath := article.ImagePath
	if req.Image != nil {
		if err := s.validator.Validate(req.Image.Data); err != nil {
			return model.NewInvalidInputError(err.Error())
		}
		imagePath, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
	}

	article.CategoryID = req.CategoryIDValue()
	article.Title = req.Title
	article.Content = req.Content
	article.ImagePath = imagePath
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

func (s *articleService) DeleteArticle(ctx context.Context, userID uuid.UUID, id int64) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrArticleNotFound {
			return model.NewArticleNotFoundError()
		}
		return fmt.Errorf("failed to get article: %w", err)
	}

	if !article.IsOwnedBy(userID) {
		return model.NewForbiddenError()
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	// Cleanup is best effort; the row is already gone.
	if s.tasks != nil && article.ImagePath != "" {
		if err := s.tasks.EnqueueDeleteImage(ctx, article.ImagePath); err != nil {
			logger.Error("failed to enqueue image cleanup", err)
		}
	}

	return nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]*model.Article, error) {
	articles, err := s.articleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// uploadImage stores the object under a timestamp-derived key that
// keeps the original extension, and returns the public URL.
func (s *articleService) uploadImage(ctx context.Context, img *model.ImageUpload) (string, error) {
	ext := strings.ToLower(path.Ext(img.Filename))
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)

	return s.storage.Upload(ctx, key, img.Data, img.ContentType)
}
