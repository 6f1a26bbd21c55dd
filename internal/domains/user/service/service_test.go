package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user/model"
	"blog-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        email,
		PasswordHash: string(hash),
	}
	repo.users[email] = user
	return user
}

func newTestService(repo *fakeUserRepo) ServiceInterface {
	return NewUserService(repo, jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice@example.com", "s3cret")
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// Issued tokens verify with the same manager and carry the user id.
	manager := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)

	_, err = manager.ValidateRefreshToken(resp.RefreshToken)
	require.NoError(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@example.com", "s3cret")
	svc := newTestService(repo)

	tests := []struct {
		name string
		req  model.LoginRequest
	}{
		{"wrong password", model.LoginRequest{Email: "alice@example.com", Password: "wrong"}},
		{"unknown email", model.LoginRequest{Email: "bob@example.com", Password: "s3cret"}},
		{"malformed email", model.LoginRequest{Email: "not-an-email", Password: "s3cret"}},
		{"empty password", model.LoginRequest{Email: "alice@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			// Every failure mode collapses to the same error so the
			// endpoint does not reveal which emails exist.
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice@example.com", "s3cret")
	svc := newTestService(repo)

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
