package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/service"
	"blog-backend/internal/shared/identity"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type UserHandler struct {
	userService service.ServiceInterface
	identity    identity.Provider
}

func NewUserHandler(userService service.ServiceInterface, provider identity.Provider) *UserHandler {
	return &UserHandler{
		userService: userService,
		identity:    provider,
	}
}

// Login verifies credentials and issues tokens.
// POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if err == model.ErrInvalidCredentials {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("login failed", err)
		response.InternalError(c, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Me returns the caller's profile.
// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			response.NotFound(c, "user not found")
			return
		}
		logger.Error("failed to get profile", err)
		response.InternalError(c, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, profile)
}
