package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest is the JSON body on POST /api/comments.
type CreateCommentRequest struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID,
			validation.Required.Error("post_id is required"),
			validation.Min(int64(1)).Error("post_id must be a positive integer"),
		),
		validation.Field(&r.Content,
			validation.By(notBlank),
		),
	)
}

// notBlank rejects content that is empty after trimming whitespace.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "content must not be blank")
	}
	return nil
}

// TrimmedContent is what gets persisted.
func (r CreateCommentRequest) TrimmedContent() string {
	return strings.TrimSpace(r.Content)
}
