package feed

import "context"

// Repository fetches the listing projection. The feed keeps its own
// read query instead of assembling posts from three domain
// repositories.
type Repository interface {
	// ListPosts returns every post newest first, with author and
	// category names resolved.
	ListPosts(ctx context.Context) ([]Post, error)
}
