// Package bookmarks persists the reader's saved articles in a local SQLite
// database. The storage contract is a single keyed value holding the
// JSON-serialized article list, newest-bookmarked-first, de-duplicated by
// article id.
package bookmarks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"agrinews/internal/domain"
)

const bookmarksKey = "saved_bookmarks"

// Store owns the bookmark list. It is meant for a single logical owner; the
// mutex only guards the read-modify-write cycle inside one process.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

// Open opens (and if needed initializes) the bookmark database at path.
// ":memory:" works for tests.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open bookmark db: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bookmark schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// List returns the bookmarked articles, newest-bookmarked-first.
func (s *Store) List(ctx context.Context) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// IsBookmarked reports whether the article id is currently saved.
func (s *Store) IsBookmarked(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range articles {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Toggle saves the article if it is not bookmarked, or removes it if it is.
// New bookmarks go to the head of the list. Returns whether the article is
// bookmarked afterwards.
func (s *Store) Toggle(ctx context.Context, article domain.Article) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	filtered := removeByID(articles, article.ID)
	if len(filtered) < len(articles) {
		return false, s.save(ctx, filtered)
	}

	updated := append([]domain.Article{article}, articles...)
	return true, s.save(ctx, updated)
}

// Remove deletes the bookmark with the given article id, if present.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.load(ctx)
	if err != nil {
		return err
	}

	filtered := removeByID(articles, id)
	if len(filtered) == len(articles) {
		return nil
	}
	return s.save(ctx, filtered)
}

// Clear removes all bookmarks.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, nil)
}

func (s *Store) load(ctx context.Context) ([]domain.Article, error) {
	var blob []byte
	err := s.db.GetContext(ctx, &blob, "SELECT value FROM kv WHERE key = ?", bookmarksKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(blob, &articles); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	return articles, nil
}

func (s *Store) save(ctx context.Context, articles []domain.Article) error {
	if articles == nil {
		articles = []domain.Article{}
	}

	blob, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		bookmarksKey, blob,
	)
	if err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

func removeByID(articles []domain.Article, id int64) []domain.Article {
	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
