package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"agrinews/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Upsert archives an article keyed by its WordPress post id. Re-archiving an
// existing id refreshes the mutable fields.
func (s *ArticleStore) Upsert(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			id, title, link, excerpt, content, image_url, category, display_date, published_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			link = EXCLUDED.link,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			category = EXCLUDED.category,
			display_date = EXCLUDED.display_date,
			published_at = EXCLUDED.published_at,
			updated_at = now()
		RETURNING id`

	executor := GetExecutor(ctx, s.db)

	var id int64
	err := executor.QueryRowxContext(ctx, query,
		article.ID,
		article.Title,
		article.Link,
		article.Excerpt,
		article.Content,
		article.Image,
		article.Category,
		article.Date,
		article.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetExistingIDs returns which of the given article ids are already archived.
func (s *ArticleStore) GetExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	if len(ids) == 0 {
		return make(map[int64]struct{}), nil
	}

	query := `SELECT id FROM articles WHERE id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}

	return result, rows.Err()
}

// GetByID loads a single archived article.
func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := `
		SELECT id, title, link, excerpt, content, image_url, category, display_date, published_at
		FROM articles
		WHERE id = $1`

	var article domain.Article
	if err := s.db.GetContext(ctx, &article, query, id); err != nil {
		return nil, err
	}
	return &article, nil
}
