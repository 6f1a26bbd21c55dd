package feed

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type Handler struct {
	feedService ServiceInterface
}

func NewHandler(feedService ServiceInterface) *Handler {
	return &Handler{feedService: feedService}
}

// BrowsePosts serves the filtered, paginated post listing.
// GET /api/posts?search=&author=&page=
func (h *Handler) BrowsePosts(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "page must be numeric")
			return
		}
		page = parsed
	}

	result, err := h.feedService.BrowsePosts(
		c.Request.Context(),
		c.Query("search"),
		c.Query("author"),
		page,
	)
	if err != nil {
		logger.Error("failed to browse posts", err)
		response.InternalError(c, "internal server error")
		return
	}

	if result.Posts == nil {
		result.Posts = []Post{}
	}
	response.JSON(c, http.StatusOK, result)
}
