package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideo_YouTubeVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=abcDEF12345", "abcDEF12345"},
		{"watch url without www", "https://youtube.com/watch?v=abcDEF12345", "abcDEF12345"},
		{"short url", "https://youtu.be/abcDEF12345", "abcDEF12345"},
		{"embed url", "https://youtube.com/embed/abcDEF12345", "abcDEF12345"},
		{"watch url with extra params", "https://www.youtube.com/watch?list=PL123&v=abcDEF12345", "abcDEF12345"},
		{"id followed by query", "https://www.youtube.com/watch?v=abcDEF12345&t=10s", "abcDEF12345"},
		{"token too short", "https://youtu.be/abcDEF1234", ""},
		{"token too long", "https://youtu.be/abcDEF123456", ""},
		{"not a youtube url", "https://vimeo.com/12345678901", ""},
		{"empty url", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Video{YouTubeURL: tt.url}
			assert.Equal(t, tt.want, v.YouTubeVideoID())
		})
	}
}

func TestVideo_YouTubeThumbnailURL(t *testing.T) {
	v := Video{YouTubeURL: "https://youtu.be/abcDEF12345"}
	assert.Equal(t, "https://img.youtube.com/vi/abcDEF12345/hqdefault.jpg", v.YouTubeThumbnailURL())

	assert.Empty(t, Video{YouTubeURL: "https://example.com"}.YouTubeThumbnailURL())
}
