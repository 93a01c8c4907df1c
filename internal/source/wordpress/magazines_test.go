package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mediaItem(id int64, date, title, sourceURL string) mediaRecord {
	return mediaRecord{
		ID:        id,
		Date:      date,
		Title:     renderedText{Rendered: title},
		SourceURL: sourceURL,
	}
}

func TestExtractMagazines_Filtering(t *testing.T) {
	items := []mediaRecord{
		mediaItem(1, "2026-01-05T08:00:00", "ISSUE 30", "https://x.com/mag.PDF"),
		mediaItem(2, "2026-01-04T08:00:00", "ISSUE 29 FLYER", "https://x.com/flyer.pdf"),
		mediaItem(3, "2026-01-03T08:00:00", "Issue 28", "https://x.com/issue-28.docx"),
		mediaItem(4, "2026-01-02T08:00:00", "Company profile", "https://x.com/profile.pdf"),
		mediaItem(5, "2026-01-01T08:00:00", "Issue 27", "https://x.com/ad-issue-27.pdf"),
	}

	magazines := extractMagazines(items)
	require.Len(t, magazines, 1)
	assert.Equal(t, int64(1), magazines[0].ID)
	assert.Equal(t, "Issue 30", magazines[0].IssueNumber)
	assert.Equal(t, "https://x.com/mag.PDF", magazines[0].PDFURL)
}

func TestExtractMagazines_SortsNewestFirst(t *testing.T) {
	items := []mediaRecord{
		mediaItem(1, "2025-11-01T08:00:00", "Issue 27", "https://x.com/issue-27.pdf"),
		mediaItem(2, "2026-01-01T08:00:00", "Issue 29", "https://x.com/issue-29.pdf"),
		mediaItem(3, "2025-12-01T08:00:00", "Issue 28", "https://x.com/issue-28.pdf"),
	}

	magazines := extractMagazines(items)
	require.Len(t, magazines, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{magazines[0].ID, magazines[1].ID, magazines[2].ID})
}

func TestExtractIssueInfo(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		url       string
		wantIssue string
		wantMonth string
	}{
		{
			name:      "month year and hyphenated issue",
			title:     "February 2026 Issue-29 Magazine",
			url:       "https://x.com/feb-2026-issue-29.pdf",
			wantIssue: "Issue 29",
			wantMonth: "February 2026",
		},
		{
			// The issue number sits left of the real year, so the two-digit
			// fallback wins. Preserved behavior.
			name:      "abbreviated month in url",
			title:     "Issue 30",
			url:       "https://x.com/magazine-oct-2025-issue-30.pdf",
			wantIssue: "Issue 30",
			wantMonth: "October 2030",
		},
		{
			name:      "no month token",
			title:     "Issue 12",
			url:       "https://x.com/issue-12.pdf",
			wantIssue: "Issue 12",
			wantMonth: "Recent",
		},
		{
			name:      "no issue number",
			title:     "March 2026 special",
			url:       "https://x.com/march-2026-special.pdf",
			wantIssue: "Latest Issue",
			wantMonth: "March 2026",
		},
		{
			// The year fallback binds to the first two-digit run when no
			// four-digit year exists; here that is the issue number.
			name:      "two digit fallback binds to issue number",
			title:     "Issue 31 December edition",
			url:       "https://x.com/issue-31-dec.pdf",
			wantIssue: "Issue 31",
			wantMonth: "December 2031",
		},
		{
			name:      "two digit year",
			title:     "Aug 25 Issue 9",
			url:       "https://x.com/aug-25.pdf",
			wantIssue: "Issue 9",
			wantMonth: "August 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue, month := extractIssueInfo(tt.title, tt.url)
			assert.Equal(t, tt.wantIssue, issue)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}
