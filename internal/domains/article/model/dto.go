package model

import (
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var numericID = regexp.MustCompile(`^[0-9]+$`)

// ImageUpload is the decoded multipart image part.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateArticleRequest comes from the multipart form on POST
// /api/article. Title is the only optional field.
type CreateArticleRequest struct {
	Title      *string
	Content    string
	CategoryID string // raw form value, validated as numeric
	Image      *ImageUpload
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.CategoryID,
			validation.Required.Error("category_id is required"),
			validation.Match(numericID).Error("category_id must be numeric"),
		),
		validation.Field(&r.Image,
			validation.Required.Error("image is required"),
		),
	)
}

// CategoryIDValue parses the validated raw value.
func (r CreateArticleRequest) CategoryIDValue() int {
	id, _ := strconv.Atoi(r.CategoryID)
	return id
}

// UpdateArticleRequest mirrors the create form; the image is optional
// and, when absent, the stored image reference is retained.
type UpdateArticleRequest struct {
	Title      *string
	Content    string
	CategoryID string
	Image      *ImageUpload
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.CategoryID,
			validation.Required.Error("category_id is required"),
			validation.Match(numericID).Error("category_id must be numeric"),
		),
	)
}

func (r UpdateArticleRequest) CategoryIDValue() int {
	id, _ := strconv.Atoi(r.CategoryID)
	return id
}
