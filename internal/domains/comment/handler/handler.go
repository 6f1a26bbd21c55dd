package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/service"
	"blog-backend/internal/shared/identity"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type CommentHandler struct {
	commentService service.ServiceInterface
	identity       identity.Provider
}

func NewCommentHandler(commentService service.ServiceInterface, provider identity.Provider) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		identity:       provider,
	}
}

// ListComments lists an article's comments, newest first.
// GET /api/comments?post_id=
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Query("post_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "post_id is required and must be numeric")
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if comments == nil {
		comments = []*model.Comment{}
	}
	response.JSON(c, http.StatusOK, comments)
}

// CreateComment creates a comment on an article.
// POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, comment)
}

func (h *CommentHandler) respondError(c *gin.Context, err error) {
	if cmtErr, ok := err.(*model.CommentError); ok && cmtErr.Code == model.ErrCodeInvalidInput {
		response.BadRequest(c, cmtErr.Message)
		return
	}

	logger.Error("comment handler error", err)
	response.InternalError(c, "internal server error")
}
