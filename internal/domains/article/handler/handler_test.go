package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/shared/identity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeArticleService struct {
	article *model.Article
	err     error

	createdBy uuid.UUID
	createReq model.CreateArticleRequest
	updatedID int64
	deletedID int64
}

func (s *fakeArticleService) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	return s.article, s.err
}

func (s *fakeArticleService) CreateArticle(ctx context.Context, userID uuid.UUID, req model.CreateArticleRequest) (*model.Article, error) {
	s.createdBy = userID
	s.createReq = req
	return s.article, s.err
}

func (s *fakeArticleService) UpdateArticle(ctx context.Context, userID uuid.UUID, id int64, req model.UpdateArticleRequest) error {
	s.updatedID = id
	return s.err
}

func (s *fakeArticleService) DeleteArticle(ctx context.Context, userID uuid.UUID, id int64) error {
	s.deletedID = id
	return s.err
}

func (s *fakeArticleService) ListArticles(ctx context.Context) ([]*model.Article, error) {
	return nil, s.err
}

// deniedProvider simulates a request that carries no usable identity.
type deniedProvider struct{}

func (deniedProvider) Resolve(_ *gin.Context) (uuid.UUID, error) {
	return uuid.Nil, identity.ErrNoIdentity
}

func setupRouter(svc *fakeArticleService, provider identity.Provider) *gin.Engine {
	h := NewArticleHandler(svc, provider)
	r := gin.New()
	r.POST("/api/article", h.CreateArticle)
	r.GET("/api/article/:id", h.GetArticle)
	r.PUT("/api/article/:id", h.UpdateArticle)
	r.DELETE("/api/article/:id", h.DeleteArticle)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestGetArticle(t *testing.T) {
	title := "Hello"
	svc := &fakeArticleService{article: &model.Article{ID: 7, Title: &title, Content: "body"}}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/article/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got model.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestGetArticleInvalidID(t *testing.T) {
	tests := []string{"abc", "-1", "0", "1.5"}
	router := setupRouter(&fakeArticleService{}, identity.NewStatic(uuid.New()))

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/article/"+raw, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid article id", errorBody(t, w))
		})
	}
}

func TestGetArticleNotFound(t *testing.T) {
	svc := &fakeArticleService{err: model.NewArticleNotFoundError()}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/article/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "article not found", errorBody(t, w))
}

func TestCreateArticle(t *testing.T) {
	owner := uuid.New()
	svc := &fakeArticleService{article: &model.Article{ID: 1, UserID: owner}}
	router := setupRouter(svc, identity.NewStatic(owner))

	body, contentType := multipartBody(t, map[string]string{
		"title":       "My Post",
		"content":     "some content",
		"category_id": "2",
	}, "photo.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/article", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, owner, svc.createdBy)
	require.NotNil(t, svc.createReq.Title)
	assert.Equal(t, "My Post", *svc.createReq.Title)
	assert.Equal(t, "2", svc.createReq.CategoryID)
	require.NotNil(t, svc.createReq.Image)
	assert.Equal(t, "photo.png", svc.createReq.Image.Filename)
}

func TestCreateArticleBlankTitleBecomesNil(t *testing.T) {
	svc := &fakeArticleService{article: &model.Article{ID: 1}}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	body, contentType := multipartBody(t, map[string]string{
		"content":     "some content",
		"category_id": "2",
	}, "photo.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/article", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, svc.createReq.Title)
}

func TestCreateArticleUnauthorized(t *testing.T) {
	svc := &fakeArticleService{}
	router := setupRouter(svc, deniedProvider{})

	body, contentType := multipartBody(t, map[string]string{"content": "x"}, "photo.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/article", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication required", errorBody(t, w))
}

func TestCreateArticleValidationError(t *testing.T) {
	svc := &fakeArticleService{err: model.NewInvalidInputError("content is required")}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	body, contentType := multipartBody(t, map[string]string{"category_id": "2"}, "photo.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/article", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "content is required", errorBody(t, w))
}

func TestUpdateArticle(t *testing.T) {
	svc := &fakeArticleService{}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	body, contentType := multipartBody(t, map[string]string{
		"content":     "edited",
		"category_id": "3",
	}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/article/5", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), svc.updatedID)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "article updated", resp["message"])
}

func TestUpdateArticleForbidden(t *testing.T) {
	svc := &fakeArticleService{err: model.NewForbiddenError()}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	body, contentType := multipartBody(t, map[string]string{
		"content":     "edited",
		"category_id": "3",
	}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/article/5", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "you do not own this article", errorBody(t, w))
}

func TestUpdateArticleUnauthorizedBeforeIDParse(t *testing.T) {
	svc := &fakeArticleService{}
	router := setupRouter(svc, deniedProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/article/not-a-number", nil)
	router.ServeHTTP(w, req)

	// Missing identity wins over the malformed id.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteArticle(t *testing.T) {
	svc := &fakeArticleService{}
	router := setupRouter(svc, identity.NewStatic(uuid.New()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/article/8", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(8), svc.deletedID)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "article deleted", resp["message"])
}

func TestDeleteArticleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", model.NewArticleNotFoundError(), http.StatusNotFound},
		{"forbidden", model.NewForbiddenError(), http.StatusForbidden},
		{"unknown error", fmt.Errorf("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeArticleService{err: tt.err}
			router := setupRouter(svc, identity.NewStatic(uuid.New()))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/article/8", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
