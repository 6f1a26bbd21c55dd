package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []Post {
	base := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	posts := make([]Post, 0, n)
	for i := 0; i < n; i++ {
		author := "Alice"
		if i%2 == 1 {
			author = "Bob"
		}
		posts = append(posts, Post{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("Post Title %d", i+1),
			Author:    author,
			Category:  "General",
			CreatedAt: base.Add(-time.Duration(i) * 5 * time.Minute),
		})
	}
	return posts
}

func TestViewPagination(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact multiple", 90, 9, 10},
		{"partial last page", 10, 9, 2},
		{"fewer than one page", 5, 9, 1},
		{"empty collection", 0, 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(makePosts(tt.total), tt.pageSize)
			assert.Equal(t, tt.wantTotalPages, v.TotalPages())
			assert.Equal(t, 1, v.CurrentPage())
		})
	}
}

func TestViewSetPageOutOfRangeIsNoOp(t *testing.T) {
	v := NewView(makePosts(20), 9) // 3 pages

	v.SetPage(2)
	require.Equal(t, 2, v.CurrentPage())

	// Out-of-range requests leave the current page untouched.
	v.SetPage(0)
	assert.Equal(t, 2, v.CurrentPage())

	v.SetPage(4)
	assert.Equal(t, 2, v.CurrentPage())

	v.SetPage(-1)
	assert.Equal(t, 2, v.CurrentPage())

	v.SetPage(3)
	assert.Equal(t, 3, v.CurrentPage())
}

func TestViewPageSlicing(t *testing.T) {
	v := NewView(makePosts(20), 9)

	first := v.Page()
	require.Len(t, first, 9)
	assert.Equal(t, int64(1), first[0].ID)

	v.SetPage(3)
	last := v.Page()
	require.Len(t, last, 2)
	assert.Equal(t, int64(19), last[0].ID)
}

func TestViewSearchFilter(t *testing.T) {
	v := NewView(makePosts(20), 9)

	// Case-insensitive substring match on the title.
	v.SetSearch("post title 1")
	// Matches "Post Title 1" and "Post Title 10".."19": 11 posts.
	assert.Equal(t, 11, v.Total())
	assert.Equal(t, 2, v.TotalPages())

	v.SetSearch("no such title")
	assert.Equal(t, 0, v.Total())
	assert.Equal(t, 1, v.TotalPages())
	assert.Empty(t, v.Page())
}

func TestViewAuthorFilter(t *testing.T) {
	v := NewView(makePosts(20), 9)

	v.SetAuthor("Alice")
	assert.Equal(t, 10, v.Total())
	for _, p := range v.Page() {
		assert.Equal(t, "Alice", p.Author)
	}

	// Exact match; partial author names do not count.
	v.SetAuthor("Ali")
	assert.Equal(t, 0, v.Total())
}

func TestViewFiltersCombineWithAND(t *testing.T) {
	v := NewView(makePosts(20), 9)

	v.SetSearch("Post Title 1")
	v.SetAuthor("Bob")
	// Titles 1, 10..19 intersected with Bob's even-indexed posts
	// (ids 2, 4, ...): ids 10, 12, 14, 16, 18.
	assert.Equal(t, 5, v.Total())
}

func TestViewFilterChangeResetsPage(t *testing.T) {
	v := NewView(makePosts(90), 9)

	v.SetPage(5)
	require.Equal(t, 5, v.CurrentPage())

	v.SetSearch("Post")
	assert.Equal(t, 1, v.CurrentPage())

	v.SetPage(3)
	v.SetAuthor("Bob")
	assert.Equal(t, 1, v.CurrentPage())
}
