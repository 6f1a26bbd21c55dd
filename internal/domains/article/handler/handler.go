package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/article/service"
	"blog-backend/internal/shared/identity"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type ArticleHandler struct {
	articleService service.ServiceInterface
	identity       identity.Provider
}

func NewArticleHandler(articleService service.ServiceInterface, provider identity.Provider) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		identity:       provider,
	}
}

// parseArticleID accepts only positive integers.
func parseArticleID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// readImage decodes the optional image part of the multipart form.
// A missing part returns (nil, nil).
func readImage(c *gin.Context) (*model.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &model.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// formTitle returns nil when the title field is absent or blank, so
// the column stays NULL instead of storing an empty string.
func formTitle(c *gin.Context) *string {
	title := c.PostForm("title")
	if title == "" {
		return nil
	}
	return &title
}

// GetArticle gets an article by id.
// GET /api/article/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseArticleID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "invalid article id")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, article)
}

// CreateArticle creates an article from the multipart form.
// POST /api/article
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.BadRequest(c, "invalid image upload")
		return
	}

	req := model.CreateArticleRequest{
		Title:      formTitle(c),
		Content:    c.PostForm("content"),
		CategoryID: c.PostForm("category_id"),
		Image:      image,
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, article)
}

// UpdateArticle mutates an owned article. Identity is resolved before
// the id is even parsed, matching the delete path.
// PUT /api/article/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseArticleID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "invalid article id")
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.BadRequest(c, "invalid image upload")
		return
	}

	req := model.UpdateArticleRequest{
		Title:      formTitle(c),
		Content:    c.PostForm("content"),
		CategoryID: c.PostForm("category_id"),
		Image:      image,
	}

	if err := h.articleService.UpdateArticle(c.Request.Context(), userID, id, req); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "article updated")
}

// DeleteArticle removes an owned article.
// DELETE /api/article/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseArticleID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "article deleted")
}

// respondError maps domain errors to HTTP statuses; anything without
// a code is logged and reported as a 500.
func (h *ArticleHandler) respondError(c *gin.Context, err error) {
	if artErr, ok := err.(*model.ArticleError); ok {
		switch artErr.Code {
		case model.ErrCodeArticleNotFound:
			response.NotFound(c, artErr.Message)
		case model.ErrCodeInvalidInput:
			response.BadRequest(c, artErr.Message)
		case model.ErrCodeForbidden:
			response.Forbidden(c, artErr.Message)
		case model.ErrCodeUnauthorized:
			response.Unauthorized(c, artErr.Message)
		default:
			response.InternalError(c, "internal server error")
		}
		return
	}

	logger.Error("article handler error", err)
	response.InternalError(c, "internal server error")
}
