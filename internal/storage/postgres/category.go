package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"agrinews/internal/domain"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// UpsertBatch refreshes the category snapshot. Counts drift between syncs, so
// every column is overwritten.
func (s *CategoryStore) UpsertBatch(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO categories (id, name, slug, article_count) VALUES ")
	valueArgs := make([]interface{}, 0, len(categories)*4)

	for i, c := range categories {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*4 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 3))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 4))
		sb.WriteString(")")
		valueArgs = append(valueArgs, c.ID, c.Name, c.Slug, c.Count)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		slug = EXCLUDED.slug,
		article_count = EXCLUDED.article_count`)

	_, err := s.db.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// LinkToArticle replaces the article's category links with the given category
// ids. Runs against the ambient transaction when one is in the context.
func (s *CategoryStore) LinkToArticle(ctx context.Context, articleID int64, categoryIDs []int64) error {
	executor := GetExecutor(ctx, s.db)

	_, err := executor.ExecContext(ctx,
		"DELETE FROM article_categories WHERE article_id = $1",
		articleID,
	)
	if err != nil {
		return err
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO article_categories (article_id, category_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(categoryIDs)+1)
	valueArgs = append(valueArgs, articleID)

	for i, categoryID := range categoryIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, categoryID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = executor.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// GetByArticleID returns the categories linked to an archived article.
func (s *CategoryStore) GetByArticleID(ctx context.Context, articleID int64) ([]domain.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.article_count
		FROM categories c
		INNER JOIN article_categories ac ON ac.category_id = c.id
		WHERE ac.article_id = $1
		ORDER BY c.id`

	var categories []domain.Category
	err := s.db.SelectContext(ctx, &categories, query, articleID)
	return categories, err
}

// GetAll returns the stored categories, most populated first.
func (s *CategoryStore) GetAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, article_count
		FROM categories
		ORDER BY article_count DESC, id`

	var categories []domain.Category
	err := s.db.SelectContext(ctx, &categories, query)
	return categories, err
}
