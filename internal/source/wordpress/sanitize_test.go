package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips tags", "<p>Hello <strong>world</strong></p>", "Hello world"},
		{"decodes en dash", "Farming &#8211; the basics", "Farming – the basics"},
		{"decodes apostrophe", "Farmer&#8217;s market", "Farmer's market"},
		{"decodes quotes", "&#8220;Quoted&#8221;", `"Quoted"`},
		{"decodes nbsp and amp", "Beef&nbsp;&amp;&nbsp;Dairy", "Beef & Dairy"},
		{"trims whitespace", "  <p>padded</p>\n", "padded"},
		{"empty string", "", ""},
		{"unclosed angle bracket left alone", "a < b", "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHTML(tt.in))
		})
	}
}

func TestCleanHTML_IdempotentOnPlainText(t *testing.T) {
	plain := `Already clean text with "quotes" and an & ampersand`
	assert.Equal(t, plain, CleanHTML(plain))
	assert.Equal(t, CleanHTML(plain), CleanHTML(CleanHTML(plain)))
}
