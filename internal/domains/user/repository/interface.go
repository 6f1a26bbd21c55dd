package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

type UserRepository interface {
	// GetByEmail gets a user by email, model.ErrUserNotFound when no
	// row matches.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID gets a user by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
