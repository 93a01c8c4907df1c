package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"agrinews/internal/domain"
)

type ArticleStore interface {
	Upsert(ctx context.Context, article *domain.Article) (int64, error)
	GetExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
}

type CategoryStore interface {
	UpsertBatch(ctx context.Context, categories []domain.Category) error
	LinkToArticle(ctx context.Context, articleID int64, categoryIDs []int64) error
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type Source interface {
	ID() string
	Name() string
	FetchArticles(ctx context.Context) ([]domain.Article, error)
	FetchMagazines(ctx context.Context) ([]domain.Magazine, error)
	FetchVideos(ctx context.Context) ([]domain.Video, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article) error
	Close() error
}
