package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"agrinews/internal/domain"
)

// SyncService runs one pass over all four content types. The fetches are
// independent and issued concurrently; articles additionally get archived and
// published downstream.
type SyncService struct {
	source     Source
	articles   ArticleStore
	categories CategoryStore
	syncState  SyncStateStore
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger

	articleState  *State[domain.Article]
	magazineState *State[domain.Magazine]
	videoState    *State[domain.Video]
	categoryState *State[domain.Category]
}

func NewSyncService(
	source Source,
	articles ArticleStore,
	categories CategoryStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:        source,
		articles:      articles,
		categories:    categories,
		syncState:     syncState,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger.With("source", source.ID()),
		articleState:  NewState[domain.Article](),
		magazineState: NewState[domain.Magazine](),
		videoState:    NewState[domain.Video](),
		categoryState: NewState[domain.Category](),
	}
}

// Snapshot accessors for whoever serves or inspects the fetched content.
func (s *SyncService) Articles() *State[domain.Article]    { return s.articleState }
func (s *SyncService) Magazines() *State[domain.Magazine]  { return s.magazineState }
func (s *SyncService) Videos() *State[domain.Video]        { return s.videoState }
func (s *SyncService) Categories() *State[domain.Category] { return s.categoryState }

func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting sync", "source_name", s.source.Name())

	var (
		wg sync.WaitGroup

		articles   []domain.Article
		magazines  []domain.Magazine
		videos     []domain.Video
		categories []domain.Category

		articleErr, magazineErr, videoErr, categoryErr error
	)

	s.articleState.Begin()
	s.magazineState.Begin()
	s.videoState.Begin()
	s.categoryState.Begin()

	wg.Add(4)
	go func() {
		defer wg.Done()
		articles, articleErr = s.source.FetchArticles(ctx)
	}()
	go func() {
		defer wg.Done()
		magazines, magazineErr = s.source.FetchMagazines(ctx)
	}()
	go func() {
		defer wg.Done()
		videos, videoErr = s.source.FetchVideos(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, categoryErr = s.source.FetchCategories(ctx)
	}()
	wg.Wait()

	stats := &domain.SyncStats{SourceID: s.source.ID()}
	var errs []error

	if magazineErr != nil {
		s.magazineState.Fail(magazineErr)
		errs = append(errs, fmt.Errorf("fetch magazines: %w", magazineErr))
	} else {
		s.magazineState.Complete(magazines)
		stats.Magazines = len(magazines)
	}

	if videoErr != nil {
		s.videoState.Fail(videoErr)
		errs = append(errs, fmt.Errorf("fetch videos: %w", videoErr))
	} else {
		s.videoState.Complete(videos)
		stats.Videos = len(videos)
	}

	if categoryErr != nil {
		s.categoryState.Fail(categoryErr)
		errs = append(errs, fmt.Errorf("fetch categories: %w", categoryErr))
	} else {
		s.categoryState.Complete(categories)
		stats.Categories = len(categories)
		if err := s.categories.UpsertBatch(ctx, categories); err != nil {
			errs = append(errs, fmt.Errorf("store categories: %w", err))
		}
	}

	if articleErr != nil {
		s.articleState.Fail(articleErr)
		errs = append(errs, fmt.Errorf("fetch articles: %w", articleErr))
	} else {
		s.articleState.Complete(articles)
		if err := s.archiveArticles(ctx, articles, stats); err != nil {
			errs = append(errs, err)
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"magazines", stats.Magazines,
		"videos", stats.Videos,
		"categories", stats.Categories,
		"duration", stats.Duration,
	)

	return stats, errors.Join(errs...)
}

// archiveArticles persists newly seen articles and publishes them downstream.
// Already-archived ids are skipped; article content is treated as immutable
// once published.
func (s *SyncService) archiveArticles(ctx context.Context, articles []domain.Article, stats *domain.SyncStats) error {
	stats.Fetched = len(articles)
	if len(articles) == 0 {
		return s.updateSyncState(ctx, stats, 0)
	}

	ids := make([]int64, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}

	existing, err := s.articles.GetExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("lookup existing articles: %w", err)
	}

	var lastArticleID int64
	for i := range articles {
		article := &articles[i]
		if article.ID > lastArticleID {
			lastArticleID = article.ID
		}

		if _, ok := existing[article.ID]; ok {
			stats.Skipped++
			continue
		}

		if err := s.saveArticle(ctx, article); err != nil {
			s.logger.Warn("failed to archive article", "id", article.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.New++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, article); err != nil {
				s.logger.Warn("failed to publish article", "id", article.ID, "error", err)
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	return s.updateSyncState(ctx, stats, lastArticleID)
}

func (s *SyncService) saveArticle(ctx context.Context, article *domain.Article) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		articleID, err := s.articles.Upsert(txCtx, article)
		if err != nil {
			return fmt.Errorf("upsert article: %w", err)
		}

		if len(article.CategoryIDs) > 0 {
			if err := s.categories.LinkToArticle(txCtx, articleID, article.CategoryIDs); err != nil {
				return fmt.Errorf("link categories: %w", err)
			}
		}

		return nil
	})
}

func (s *SyncService) updateSyncState(ctx context.Context, stats *domain.SyncStats, lastArticleID int64) error {
	state, err := s.syncState.Get(ctx, s.source.ID())
	if err != nil {
		return fmt.Errorf("get sync state: %w", err)
	}

	state.SourceID = s.source.ID()
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(stats.New)
	if lastArticleID > state.LastArticleID {
		state.LastArticleID = lastArticleID
	}

	if err := s.syncState.Update(ctx, state); err != nil {
		return fmt.Errorf("update sync state: %w", err)
	}
	return nil
}
