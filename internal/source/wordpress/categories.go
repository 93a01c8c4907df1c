package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"agrinews/internal/domain"
)

const categoriesPath = "/wp-json/wp/v2/categories"

// FetchCategories fetches taxonomy categories ordered by article count,
// dropping empty ones.
func (s *Source) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(s.mediaPerPage))
	params.Set("orderby", "count")
	params.Set("order", "desc")

	var records []categoryRecord
	if err := s.getJSON(ctx, categoriesPath, params, &records); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		if r.Count <= 0 {
			continue
		}
		categories = append(categories, domain.Category{
			ID:    r.ID,
			Name:  strings.ReplaceAll(r.Name, "&amp;", "&"),
			Count: r.Count,
			Slug:  r.Slug,
		})
	}

	s.logger.Debug("fetched categories", "count", len(categories))
	return categories, nil
}
