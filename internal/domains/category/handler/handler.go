package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/category/model"
	"blog-backend/internal/domains/category/service"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryService service.ServiceInterface
}

func NewCategoryHandler(categoryService service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists all categories ordered by id.
// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("failed to list categories", err)
		response.InternalError(c, "internal server error")
		return
	}

	if categories == nil {
		categories = []*model.Category{}
	}
	response.JSON(c, http.StatusOK, categories)
}
