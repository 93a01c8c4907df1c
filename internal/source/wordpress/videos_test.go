package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideos_ACFPath(t *testing.T) {
	posts := []videoRecord{
		{
			ID:    1,
			Date:  "2026-02-10T08:00:00",
			Link:  "https://example.com/video-1",
			Title: renderedText{Rendered: "Planting season <b>tips</b>"},
			ACF: &acfFields{
				YouTubeURL:  "  https://youtu.be/abcDEF12345  ",
				Description: "A <i>short</i> walkthrough",
			},
		},
		{
			ID:    2,
			Date:  "2026-02-09T08:00:00",
			Title: renderedText{Rendered: "No URL"},
			ACF:   &acfFields{YouTubeURL: "   "},
		},
	}

	videos := extractVideos(posts)
	require.Len(t, videos, 1)

	v := videos[0]
	assert.Equal(t, int64(1), v.ID)
	assert.Equal(t, "Planting season tips", v.Title)
	assert.Equal(t, "A short walkthrough", v.Description)
	assert.Equal(t, "https://youtu.be/abcDEF12345", v.YouTubeURL)
	assert.Equal(t, "https://img.youtube.com/vi/abcDEF12345/hqdefault.jpg", v.ThumbnailURL)
	assert.Equal(t, "https://example.com/video-1", v.WebURL)
}

func TestExtractVideos_ScrapesContentThenExcerpt(t *testing.T) {
	posts := []videoRecord{
		{
			ID:      1,
			Title:   renderedText{Rendered: "Watch link in content"},
			Content: renderedText{Rendered: `<p>See https://www.youtube.com/watch?v=abcDEF12345 for more</p>`},
		},
		{
			ID:      2,
			Title:   renderedText{Rendered: "Embed in excerpt"},
			Excerpt: renderedText{Rendered: `<iframe src="https://www.youtube.com/embed/xyzXYZ98765"></iframe>`},
		},
		{
			ID:      3,
			Title:   renderedText{Rendered: "Nothing to find"},
			Content: renderedText{Rendered: "<p>plain text</p>"},
		},
	}

	videos := extractVideos(posts)
	require.Len(t, videos, 2)

	assert.Equal(t, "https://www.youtube.com/watch?v=abcDEF12345", videos[0].YouTubeURL)
	// src= prefix and quotes are stripped from the embed attribute match.
	assert.Equal(t, "https://www.youtube.com/embed/xyzXYZ98765", videos[1].YouTubeURL)
	assert.Equal(t, "xyzXYZ98765", videos[1].YouTubeVideoID())
}

func TestExtractVideos_ContentWinsOverExcerpt(t *testing.T) {
	posts := []videoRecord{
		{
			ID:      1,
			Title:   renderedText{Rendered: "Both fields"},
			Content: renderedText{Rendered: "https://youtu.be/fromCONTENT"},
			Excerpt: renderedText{Rendered: "https://youtu.be/fromEXCERPT"},
		},
	}

	videos := extractVideos(posts)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://youtu.be/fromCONTENT", videos[0].YouTubeURL)
}

func TestExtractVideos_FeaturedMediaThumbnailWins(t *testing.T) {
	posts := []videoRecord{
		{
			ID:    1,
			Title: renderedText{Rendered: "With cover"},
			ACF:   &acfFields{YouTubeURL: "https://youtu.be/abcDEF12345"},
			Embedded: &embedded{
				FeaturedMedia: []featuredMedia{{SourceURL: "https://example.com/cover.jpg"}},
			},
		},
	}

	videos := extractVideos(posts)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://example.com/cover.jpg", videos[0].ThumbnailURL)
}

func TestScrapeYouTubeURL_PatternOrder(t *testing.T) {
	html := `short https://youtu.be/shortIDaaaa and watch https://youtube.com/watch?v=watchIDaaaa`
	// watch pattern is tried before the short-url pattern
	assert.Equal(t, "https://youtube.com/watch?v=watchIDaaaa", scrapeYouTubeURL(html))

	assert.Equal(t, "", scrapeYouTubeURL("no links here"))
}
