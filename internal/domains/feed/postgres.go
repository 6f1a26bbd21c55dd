package feed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const excerptLength = 120

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListPosts(ctx context.Context) ([]Post, error) {
	query := `
		SELECT p.id, COALESCE(p.title, ''), c.name, u.name, p.image_path, p.content, p.created_at
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		var content string
		err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Author, &p.ImageURL, &content, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.Excerpt = makeExcerpt(content)
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// makeExcerpt truncates on rune boundaries so multibyte content does
// not get split mid-character.
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "…"
}
