package domain

// Article is a normalized news post. ID is the WordPress post id and is the
// sole identity for de-duplication, bookmarking and list diffing.
type Article struct {
	ID        int64   `json:"id" db:"id"`
	Title     string  `json:"title" db:"title"`
	Link      string  `json:"link" db:"link"`
	Excerpt   string  `json:"excerpt" db:"excerpt"`
	Content   string  `json:"content" db:"content"`
	Image     *string `json:"image,omitempty" db:"image_url"`
	Category  string  `json:"category" db:"category"`
	Date      string  `json:"date" db:"display_date"`      // relative label, computed at fetch time
	Timestamp string  `json:"timestamp" db:"published_at"` // original ISO-8601 publish instant

	// Taxonomy term ids of the post, kept in a link table rather than a column.
	CategoryIDs []int64 `json:"categoryIds,omitempty" db:"-"`
}
