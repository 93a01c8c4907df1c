package wordpress

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Applied in order after tag stripping. The patterns do not overlap, but the
// order is part of the contract anyway.
var entityReplacements = []struct {
	entity, text string
}{
	{"&#8211;", "–"},
	{"&#8217;", "'"},
	{"&#8220;", `"`},
	{"&#8221;", `"`},
	{"&nbsp;", " "},
	{"&amp;", "&"},
}

// CleanHTML strips tag-delimited markup from a WordPress rendered field,
// decodes the fixed entity set and trims surrounding whitespace. Total on all
// inputs, including the empty string.
func CleanHTML(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	for _, r := range entityReplacements {
		text = strings.ReplaceAll(text, r.entity, r.text)
	}
	return strings.TrimSpace(text)
}
