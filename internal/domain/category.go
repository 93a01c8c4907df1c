package domain

import "strings"

// Category is a WordPress taxonomy term with at least one published article.
type Category struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"article_count"`
	Slug  string `json:"slug" db:"slug"`
}

var categoryIcons = map[string]string{
	"agribusiness":              "building.2.fill",
	"livestock":                 "hare.fill",
	"crops":                     "leaf.fill",
	"business":                  "briefcase.fill",
	"beef":                      "fork.knife",
	"poultry":                   "bird.fill",
	"dairy":                     "drop.fill",
	"beans":                     "circle.grid.3x3.fill",
	"grains":                    "circle.hexagongrid.fill",
	"horticulture":              "camera.macro",
	"fruits":                    "apple.logo",
	"goat":                      "pawprint.fill",
	"pork":                      "fork.knife",
	"fish":                      "fish.fill",
	"forestry":                  "tree.fill",
	"sugar":                     "cube.fill",
	"cotton":                    "cloud.fill",
	"flowers":                   "camera.macro",
	"events":                    "calendar",
	"education-training":        "graduationcap.fill",
	"technology-and-innovation": "cpu.fill",
	"news":                      "newspaper.fill",
	"eswatini-news":             "map.fill",
	"africa":                    "globe.africa.fill",
	"world":                     "globe",
	"media":                     "play.rectangle.fill",
	"sponsored":                 "star.fill",
}

// Icon returns the display icon for the category slug, falling back to a
// generic document icon for unknown slugs.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[strings.ToLower(c.Slug)]; ok {
		return icon
	}
	return "doc.text.fill"
}
