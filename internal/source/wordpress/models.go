package wordpress

// Raw WordPress REST API records. The API is loosely typed; fields not modeled
// here are ignored on decode.

type renderedText struct {
	Rendered string `json:"rendered"`
}

type postRecord struct {
	ID       int64        `json:"id"`
	Date     string       `json:"date"`
	Link     string       `json:"link"`
	Title    renderedText `json:"title"`
	Excerpt  renderedText `json:"excerpt"`
	Content  renderedText `json:"content"`
	Embedded *embedded    `json:"_embedded"`
}

type embedded struct {
	FeaturedMedia []featuredMedia `json:"wp:featuredmedia"`
	Terms         [][]term        `json:"wp:term"`
}

type featuredMedia struct {
	SourceURL string `json:"source_url"`
}

type term struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Taxonomy string `json:"taxonomy"`
}

type mediaRecord struct {
	ID        int64        `json:"id"`
	Date      string       `json:"date"`
	Title     renderedText `json:"title"`
	SourceURL string       `json:"source_url"`
}

type videoRecord struct {
	ID       int64        `json:"id"`
	Date     string       `json:"date"`
	Link     string       `json:"link"`
	Title    renderedText `json:"title"`
	Excerpt  renderedText `json:"excerpt"`
	Content  renderedText `json:"content"`
	ACF      *acfFields   `json:"acf"`
	Embedded *embedded    `json:"_embedded"`
}

type acfFields struct {
	YouTubeURL  string `json:"youtube_url"`
	Description string `json:"description"`
}

type categoryRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}
