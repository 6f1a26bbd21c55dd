package feed

import (
	"strings"
	"time"
)

// Post is the listing projection of an article: owner and category
// resolved to display names, content cut down to an excerpt.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"image_url,omitempty"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"created_at"`
}

// View derives a filtered, paginated page from an already-fetched
// post collection. It holds no server-side state beyond the slice it
// was built over and performs no I/O.
type View struct {
	posts    []Post
	search   string
	author   string
	page     int
	pageSize int
}

// NewView builds a view over posts with a fixed page size, starting
// at page 1 with no filters.
func NewView(posts []Post, pageSize int) *View {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View{
		posts:    posts,
		page:     1,
		pageSize: pageSize,
	}
}

// SetSearch changes the title filter and resets to page 1.
func (v *View) SetSearch(search string) {
	v.search = search
	v.page = 1
}

// SetAuthor changes the author filter and resets to page 1. An empty
// author clears the filter.
func (v *View) SetAuthor(author string) {
	v.author = author
	v.page = 1
}

// SetPage moves to the requested page. Requests outside
// [1, TotalPages] are silently ignored, leaving the current page
// unchanged.
func (v *View) SetPage(page int) {
	if page < 1 || page > v.TotalPages() {
		return
	}
	v.page = page
}

// CurrentPage is the 1-based page index.
func (v *View) CurrentPage() int {
	return v.page
}

func (v *View) PageSize() int {
	return v.pageSize
}

// Total is the number of posts passing the current filters.
func (v *View) Total() int {
	return len(v.filtered())
}

// TotalPages is max(1, ceil(Total/PageSize)), so an empty result
// still has one (empty) page.
func (v *View) TotalPages() int {
	total := v.Total()
	if total == 0 {
		return 1
	}
	return (total + v.pageSize - 1) / v.pageSize
}

// Page returns the posts of the current page.
func (v *View) Page() []Post {
	filtered := v.filtered()

	start := (v.page - 1) * v.pageSize
	if start >= len(filtered) {
		return []Post{}
	}

	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// filtered applies the title substring match (case-insensitive) and
// the exact author match, combined with AND. Either filter may be
// empty, in which case it passes everything.
func (v *View) filtered() []Post {
	if v.search == "" && v.author == "" {
		return v.posts
	}

	needle := strings.ToLower(v.search)
	out := make([]Post, 0, len(v.posts))
	for _, p := range v.posts {
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if v.author != "" && p.Author != v.author {
			continue
		}
		out = append(out, p)
	}
	return out
}
