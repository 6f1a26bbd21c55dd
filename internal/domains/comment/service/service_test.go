package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment/model"
)

type fakeCommentRepo struct {
	comments  []*model.Comment
	createErr error
	listErr   error
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if r.createErr != nil {
		return r.createErr
	}
	comment.ID = int64(len(r.comments) + 1)
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*model.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreateComment(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := NewCommentService(repo)
	author := uuid.New()

	comment, err := svc.CreateComment(context.Background(), author, model.CreateCommentRequest{
		PostID:  3,
		Content: "  nice article  ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), comment.PostID)
	assert.Equal(t, author, comment.UserID)
	// Surrounding whitespace is stripped before persisting.
	assert.Equal(t, "nice article", comment.Content)
}

func TestCreateCommentValidation(t *testing.T) {
	tests := []struct {
		name string
		req  model.CreateCommentRequest
	}{
		{"missing post_id", model.CreateCommentRequest{Content: "hi"}},
		{"negative post_id", model.CreateCommentRequest{PostID: -1, Content: "hi"}},
		{"empty content", model.CreateCommentRequest{PostID: 1}},
		{"blank content", model.CreateCommentRequest{PostID: 1, Content: "   \n\t "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCommentRepo{}
			svc := NewCommentService(repo)

			_, err := svc.CreateComment(context.Background(), uuid.New(), tt.req)

			var cmtErr *model.CommentError
			require.ErrorAs(t, err, &cmtErr)
			assert.Equal(t, model.ErrCodeInvalidInput, cmtErr.Code)
			assert.Empty(t, repo.comments)
		})
	}
}

func TestListByPost(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := NewCommentService(repo)
	author := uuid.New()

	for _, postID := range []int64{1, 2, 1} {
		_, err := svc.CreateComment(context.Background(), author, model.CreateCommentRequest{
			PostID:  postID,
			Content: "a comment",
		})
		require.NoError(t, err)
	}

	comments, err := svc.ListByPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestListByPostRepositoryError(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{listErr: errors.New("connection reset")})

	comments, err := svc.ListByPost(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, comments)
}
