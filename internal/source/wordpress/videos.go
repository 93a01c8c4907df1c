package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"agrinews/internal/domain"
)

// Ordered plain-URL patterns for scraping a YouTube link out of rendered HTML.
var youtubeURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/watch\?v=[A-Za-z0-9_-]{11}`),
	regexp.MustCompile(`https?://(?:www\.)?youtu\.be/[A-Za-z0-9_-]{11}`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/embed/[A-Za-z0-9_-]{11}`),
}

// An embed URL wrapped in a src attribute; the capture group drops the src=
// prefix and quotes.
var youtubeSrcPattern = regexp.MustCompile(`src="(https?://(?:www\.)?youtube\.com/embed/[A-Za-z0-9_-]{11})"`)

// FetchVideos fetches the video custom post type and keeps only records a
// YouTube URL can be obtained for.
func (s *Source) FetchVideos(ctx context.Context) ([]domain.Video, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(s.mediaPerPage))
	params.Set("orderby", "date")
	params.Set("order", "desc")
	params.Set("_embed", "true")

	var posts []videoRecord
	if err := s.getJSON(ctx, "/wp-json/wp/v2/"+s.videoPostType, params, &posts); err != nil {
		return nil, fmt.Errorf("fetch %s posts: %w", s.videoPostType, err)
	}

	videos := extractVideos(posts)
	s.logger.Debug("extracted videos", "posts", len(posts), "videos", len(videos))
	return videos, nil
}

func extractVideos(posts []videoRecord) []domain.Video {
	videos := make([]domain.Video, 0, len(posts))

	for _, p := range posts {
		youtubeURL, description := videoURLAndDescription(p)
		if youtubeURL == "" {
			continue
		}

		video := domain.Video{
			ID:            p.ID,
			Title:         CleanHTML(p.Title.Rendered),
			Description:   CleanHTML(description),
			YouTubeURL:    youtubeURL,
			PublishedDate: p.Date,
			WebURL:        p.Link,
		}
		video.ThumbnailURL = resolveThumbnail(p, video)

		videos = append(videos, video)
	}

	return videos
}

// videoURLAndDescription prefers the structured ACF field; older posts carry
// the link only inside rendered HTML, so content and then excerpt are scraped
// as a fallback.
func videoURLAndDescription(p videoRecord) (youtubeURL, description string) {
	if p.ACF != nil {
		description = p.ACF.Description
		if trimmed := strings.TrimSpace(p.ACF.YouTubeURL); trimmed != "" {
			return trimmed, description
		}
	}
	if description == "" {
		description = p.Excerpt.Rendered
	}

	for _, html := range []string{p.Content.Rendered, p.Excerpt.Rendered} {
		if found := scrapeYouTubeURL(html); found != "" {
			return found, description
		}
	}

	return "", description
}

// scrapeYouTubeURL tries the ordered pattern list against a rendered HTML
// fragment; first match wins.
func scrapeYouTubeURL(html string) string {
	for _, re := range youtubeURLPatterns {
		if match := re.FindString(html); match != "" {
			return match
		}
	}
	if m := youtubeSrcPattern.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	return ""
}

// resolveThumbnail prefers the embedded featured media, then the derived
// YouTube thumbnail, else leaves the field empty.
func resolveThumbnail(p videoRecord, video domain.Video) string {
	if p.Embedded != nil && len(p.Embedded.FeaturedMedia) > 0 && p.Embedded.FeaturedMedia[0].SourceURL != "" {
		return p.Embedded.FeaturedMedia[0].SourceURL
	}
	return video.YouTubeThumbnailURL()
}
