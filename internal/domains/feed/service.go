package feed

import (
	"context"
	"fmt"
)

// DefaultPageSize matches the 3x3 card grid of the frontend.
const DefaultPageSize = 9

type ServiceInterface interface {
	// BrowsePosts fetches the post collection and derives the
	// requested page from it.
	BrowsePosts(ctx context.Context, search, author string, page int) (*BrowseResult, error)
}

type BrowseResult struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type feedService struct {
	repo     Repository
	pageSize int
}

func NewFeedService(repo Repository) ServiceInterface {
	return &feedService{
		repo:     repo,
		pageSize: DefaultPageSize,
	}
}

func (s *feedService) BrowsePosts(ctx context.Context, search, author string, page int) (*BrowseResult, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	view := NewView(posts, s.pageSize)
	view.SetSearch(search)
	view.SetAuthor(author)
	// Out-of-range pages leave the view on page 1; that is the
	// filter-reset behavior, not an error.
	view.SetPage(page)

	return &BrowseResult{
		Posts: view.Page(),
		Pagination: Pagination{
			Page:       view.CurrentPage(),
			PageSize:   view.PageSize(),
			Total:      view.Total(),
			TotalPages: view.TotalPages(),
		},
	}, nil
}
