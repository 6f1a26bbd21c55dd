package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeArticleNotFound = "ART001"
	ErrCodeInvalidInput    = "ART002"
	ErrCodeForbidden       = "ART003"
	ErrCodeUnauthorized    = "ART004"
)

// Errors
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthorized    = errors.New("unauthorized")
)

// ArticleError carries a stable code the handler maps to an HTTP
// status.
type ArticleError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArticleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

func NewArticleNotFoundError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeArticleNotFound,
		Message: "article not found",
		Err:     ErrArticleNotFound,
	}
}

func NewInvalidInputError(message string) *ArticleError {
	return &ArticleError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Err:     ErrInvalidInput,
	}
}

func NewForbiddenError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeForbidden,
		Message: "you do not own this article",
		Err:     ErrForbidden,
	}
}

func NewUnauthorizedError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeUnauthorized,
		Message: "authentication required",
		Err:     ErrUnauthorized,
	}
}
