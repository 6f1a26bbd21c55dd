package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/category/model"
)

type fakeCategoryRepo struct {
	categories []*model.Category
	err        error
	calls      int
}

func (r *fakeCategoryRepo) ListAll(ctx context.Context) ([]*model.Category, error) {
	r.calls++
	return r.categories, r.err
}

// memoryCache is an in-process stand-in for the Redis cache, using the
// same JSON round-trip.
type memoryCache struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func seedCategories() []*model.Category {
	return []*model.Category{
		{ID: 1, Name: "Tech"},
		{ID: 2, Name: "Travel"},
	}
}

func TestListCategories(t *testing.T) {
	repo := &fakeCategoryRepo{categories: seedCategories()}
	svc := NewCategoryService(repo, nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Tech", categories[0].Name)
}

func TestListCategoriesCachesResult(t *testing.T) {
	repo := &fakeCategoryRepo{categories: seedCategories()}
	cache := newMemoryCache()
	svc := NewCategoryService(repo, cache)

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	// Second call is served from the cache.
	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	require.Len(t, categories, 2)
	assert.Equal(t, 2, categories[1].ID)
}

func TestListCategoriesCacheFailuresFallThrough(t *testing.T) {
	repo := &fakeCategoryRepo{categories: seedCategories()}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewCategoryService(repo, cache)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, 1, repo.calls)
}

func TestListCategoriesRepositoryError(t *testing.T) {
	repo := &fakeCategoryRepo{err: errors.New("relation does not exist")}
	svc := NewCategoryService(repo, newMemoryCache())

	categories, err := svc.ListCategories(context.Background())
	assert.Error(t, err)
	assert.Nil(t, categories)
}
