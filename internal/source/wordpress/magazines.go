package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"agrinews/internal/domain"
)

const mediaPath = "/wp-json/wp/v2/media"

// Media items whose title or URL carry one of these tokens are promotional
// uploads, not magazine issues.
var skipKeywords = []string{"FLYER", "BUDGET", "SPEECH", "BANNER", "ADVERT", "AD-"}

var (
	issueGatePattern = regexp.MustCompile(`ISSUE\s*-?\s*\d+`)
	issuePattern     = regexp.MustCompile(`ISSUE[\s-]*\d+`)
	digitsPattern    = regexp.MustCompile(`\d+`)
	// The bare two-digit fallback can bind to an unrelated number (an issue
	// number, say) when no four-digit year is present. Deliberately kept.
	yearPattern = regexp.MustCompile(`20\d{2}|\b\d{2}\b`)
)

// Full month names are checked before abbreviations; first substring match in
// list order wins.
var monthTokens = []struct {
	token, full string
}{
	{"JANUARY", "January"}, {"FEBRUARY", "February"}, {"MARCH", "March"},
	{"APRIL", "April"}, {"MAY", "May"}, {"JUNE", "June"},
	{"JULY", "July"}, {"AUGUST", "August"}, {"SEPTEMBER", "September"},
	{"OCTOBER", "October"}, {"NOVEMBER", "November"}, {"DECEMBER", "December"},
	{"JAN", "January"}, {"FEB", "February"}, {"MAR", "March"},
	{"APR", "April"}, {"JUN", "June"}, {"JUL", "July"},
	{"AUG", "August"}, {"SEP", "September"}, {"OCT", "October"},
	{"NOV", "November"}, {"DEC", "December"},
}

// FetchMagazines fetches the media library and keeps only genuine
// magazine-issue PDFs, newest first.
func (s *Source) FetchMagazines(ctx context.Context) ([]domain.Magazine, error) {
	params := url.Values{}
	params.Set("media_type", "application")
	params.Set("per_page", strconv.Itoa(s.mediaPerPage))
	params.Set("orderby", "date")
	params.Set("order", "desc")

	var items []mediaRecord
	if err := s.getJSON(ctx, mediaPath, params, &items); err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}

	magazines := extractMagazines(items)
	s.logger.Debug("extracted magazines", "media_items", len(items), "magazines", len(magazines))
	return magazines, nil
}

func extractMagazines(items []mediaRecord) []domain.Magazine {
	magazines := make([]domain.Magazine, 0, len(items))

	for _, item := range items {
		title := strings.ToUpper(item.Title.Rendered)
		sourceURL := strings.ToUpper(item.SourceURL)

		if !strings.Contains(sourceURL, ".PDF") {
			continue
		}
		if !issueGatePattern.MatchString(title) {
			continue
		}
		if containsAny(title, skipKeywords) || containsAny(sourceURL, skipKeywords) {
			continue
		}

		cleanTitle := CleanHTML(item.Title.Rendered)
		issueNumber, monthYear := extractIssueInfo(cleanTitle, item.SourceURL)

		magazines = append(magazines, domain.Magazine{
			ID:            item.ID,
			Title:         cleanTitle,
			IssueNumber:   issueNumber,
			MonthYear:     monthYear,
			PDFURL:        item.SourceURL,
			PublishedDate: item.Date,
		})
	}

	// ISO-8601 strings of the same format sort chronologically as plain strings.
	sort.SliceStable(magazines, func(i, j int) bool {
		return magazines[i].PublishedDate > magazines[j].PublishedDate
	})

	return magazines
}

// extractIssueInfo derives the issue-number and month-year labels from the
// combined title and URL text.
func extractIssueInfo(title, sourceURL string) (issueNumber, monthYear string) {
	combined := strings.ToUpper(title + " " + sourceURL)

	issueNumber = "Latest Issue"
	if match := issuePattern.FindString(combined); match != "" {
		if digits := digitsPattern.FindString(match); digits != "" {
			issueNumber = "Issue " + digits
		}
	}

	monthYear = "Recent"
	for _, m := range monthTokens {
		if !strings.Contains(combined, m.token) {
			continue
		}
		if year := yearPattern.FindString(combined); year != "" {
			if len(year) == 2 {
				year = "20" + year
			}
			monthYear = m.full + " " + year
		}
		break
	}

	return issueNumber, monthYear
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
