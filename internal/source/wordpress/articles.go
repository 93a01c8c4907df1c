package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agrinews/internal/domain"
)

const (
	postsPath       = "/wp-json/wp/v2/posts"
	excerptMaxLen   = 150
	defaultCategory = "News"
)

// FetchArticles fetches recent posts with embedded media and terms.
func (s *Source) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(s.perPage))
	params.Set("_embed", "true")

	var posts []postRecord
	if err := s.getJSON(ctx, postsPath, params, &posts); err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	articles := s.transformPosts(posts)
	s.logger.Debug("fetched articles", "count", len(articles))
	return articles, nil
}

// FetchArticlesByCategory fetches posts belonging to a single category.
func (s *Source) FetchArticlesByCategory(ctx context.Context, categoryID int64) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(s.perPage))
	params.Set("_embed", "true")
	params.Set("categories", strconv.FormatInt(categoryID, 10))

	var posts []postRecord
	if err := s.getJSON(ctx, postsPath, params, &posts); err != nil {
		return nil, fmt.Errorf("fetch posts for category %d: %w", categoryID, err)
	}

	return s.transformPosts(posts), nil
}

func (s *Source) transformPosts(posts []postRecord) []domain.Article {
	now := s.now()
	articles := make([]domain.Article, 0, len(posts))

	for _, p := range posts {
		article := domain.Article{
			ID:        p.ID,
			Title:     CleanHTML(p.Title.Rendered),
			Link:      p.Link,
			Excerpt:   truncateExcerpt(CleanHTML(p.Excerpt.Rendered)),
			Content:   CleanHTML(p.Content.Rendered),
			Category:  defaultCategory,
			Date:      relativeDate(p.Date, now),
			Timestamp: p.Date,
		}

		if p.Embedded != nil {
			if len(p.Embedded.FeaturedMedia) > 0 && p.Embedded.FeaturedMedia[0].SourceURL != "" {
				u := p.Embedded.FeaturedMedia[0].SourceURL
				article.Image = &u
			}
			if len(p.Embedded.Terms) > 0 && len(p.Embedded.Terms[0]) > 0 && p.Embedded.Terms[0][0].Name != "" {
				article.Category = p.Embedded.Terms[0][0].Name
			}
			article.CategoryIDs = categoryTermIDs(p.Embedded.Terms)
		}

		articles = append(articles, article)
	}

	return articles
}

// categoryTermIDs collects the ids of the post's category terms. The first
// embedded term group is the category taxonomy; the taxonomy field guards
// against sites that embed groups in a different order.
func categoryTermIDs(groups [][]term) []int64 {
	var ids []int64
	for i, group := range groups {
		for _, t := range group {
			// Terms without a taxonomy only count in the first group.
			if t.Taxonomy != "category" && !(t.Taxonomy == "" && i == 0) {
				continue
			}
			if t.ID > 0 {
				ids = append(ids, t.ID)
			}
		}
	}
	return ids
}

// truncateExcerpt caps an already-sanitized excerpt at 150 characters and
// trims the result. Cutting mid-word is accepted behavior.
func truncateExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) > excerptMaxLen {
		runes = runes[:excerptMaxLen]
	}
	return strings.TrimSpace(string(runes))
}

// relativeDate renders a publish instant as a coarse "time ago" label.
// Unparseable dates degrade to "Recent".
func relativeDate(dateString string, now time.Time) string {
	published, err := parseWPDate(dateString)
	if err != nil {
		return "Recent"
	}

	hours := int(now.Sub(published).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case hours < 48:
		return "Yesterday"
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}

// parseWPDate accepts both RFC 3339 and the zone-less form WordPress emits
// for site-local dates.
func parseWPDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
