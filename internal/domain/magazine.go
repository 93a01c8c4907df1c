package domain

// Magazine is a magazine-issue PDF extracted from the WordPress media library.
// PublishedDate keeps the source's ISO-8601 string; same-format timestamps sort
// chronologically under plain string comparison.
type Magazine struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	IssueNumber   string `json:"issueNumber"`
	MonthYear     string `json:"monthYear"`
	PDFURL        string `json:"pdfUrl"`
	PublishedDate string `json:"publishedDate"`
}
