package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/repository"
)

type ServiceInterface interface {
	// ListByPost returns an article's comments, newest first.
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)

	// CreateComment validates and persists a comment with trimmed
	// content. Any resolved caller may comment on any article.
	CreateComment(ctx context.Context, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) ServiceInterface {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) CreateComment(
	ctx context.Context,
	userID uuid.UUID,
	req model.CreateCommentRequest,
) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	comment := &model.Comment{
		PostID:  req.PostID,
		UserID:  userID,
		Content: req.TrimmedContent(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
