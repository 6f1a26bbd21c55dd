package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/article/model"
)

type postgresArticleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &postgresArticleRepository{pool: pool}
}

func (r *postgresArticleRepository) Create(ctx context.Context, article *model.Article) error {
	query := `
		INSERT INTO posts (user_id, category_id, title, content, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		article.UserID,
		article.CategoryID,
		article.Title,
		article.Content,
		article.ImagePath,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *postgresArticleRepository) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	query := `
		SELECT id, user_id, category_id, title, content, image_path, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	article := &model.Article{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.UserID,
		&article.CategoryID,
		&article.Title,
		&article.Content,
		&article.ImagePath,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

func (r *postgresArticleRepository) Update(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE posts
		SET
			category_id = $2,
			title = $3,
			content = $4,
			image_path = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		article.ID,
		article.CategoryID,
		article.Title,
		article.Content,
		article.ImagePath,
	)

	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

func (r *postgresArticleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

func (r *postgresArticleRepository) ListAll(ctx context.Context) ([]*model.Article, error) {
	query := `
		SELECT id, user_id, category_id, title, content, image_path, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		article := &model.Article{}
		err := rows.Scan(
			&article.ID,
			&article.UserID,
			&article.CategoryID,
			&article.Title,
			&article.Content,
			&article.ImagePath,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	return articles, nil
}
