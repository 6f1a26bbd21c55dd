package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeInvalidInput = "CMT001"
	ErrCodeInternal     = "CMT002"
)

var ErrInvalidInput = errors.New("invalid input")

type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

func NewInvalidInputError(message string) *CommentError {
	return &CommentError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Err:     ErrInvalidInput,
	}
}
