package identity

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKey is where the auth middleware stores the resolved user id.
const ContextKey = "user_id"

// ErrNoIdentity is returned when no caller identity can be resolved.
var ErrNoIdentity = errors.New("no caller identity")

// Provider resolves the caller identity for a request. Mutating
// handlers depend on this interface instead of reading the gin context
// directly, so tests and the auth-less deployment mode can substitute
// a fixed identity.
type Provider interface {
	Resolve(c *gin.Context) (uuid.UUID, error)
}

// TokenProvider reads the user id the JWT auth middleware placed in
// the context.
type TokenProvider struct{}

func NewTokenProvider() *TokenProvider {
	return &TokenProvider{}
}

func (p *TokenProvider) Resolve(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKey)
	if !exists {
		return uuid.Nil, ErrNoIdentity
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}
	return id, nil
}

// Static stamps every request with the same user id. It stands in for
// session resolution while the auth frontend is unfinished and must
// never be active in production.
type Static struct {
	UserID uuid.UUID
}

func NewStatic(userID uuid.UUID) *Static {
	return &Static{UserID: userID}
}

func (p *Static) Resolve(_ *gin.Context) (uuid.UUID, error) {
	return p.UserID, nil
}
