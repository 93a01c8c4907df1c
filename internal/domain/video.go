package domain

import "regexp"

// Video is a normalized entry of the video custom post type. YouTubeURL is
// never empty after extraction; ThumbnailURL may be.
type Video struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	YouTubeURL    string `json:"youtubeUrl"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
	PublishedDate string `json:"publishedDate"`
	WebURL        string `json:"webUrl"`
}

// Tried in order, first match wins. The trailing boundary keeps a 12-character
// token from matching on its first 11 characters.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`),
	regexp.MustCompile(`(?i)youtube\.com/watch\?.*v=([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`),
}

// YouTubeVideoID extracts the 11-character video id from YouTubeURL.
// Returns "" when no known URL shape matches.
func (v Video) YouTubeVideoID() string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(v.YouTubeURL); m != nil {
			return m[1]
		}
	}
	return ""
}

// YouTubeThumbnailURL derives the standard thumbnail location from the video
// id, or "" when no id can be extracted.
func (v Video) YouTubeThumbnailURL() string {
	id := v.YouTubeVideoID()
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
