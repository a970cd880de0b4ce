package md

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// WordPress block delimiters are HTML comments like <!-- wp:paragraph -->
// and <!-- /wp:paragraph -->. They carry no content and only confuse the
// markdown conversion, so they are stripped first.
var blockDelimiterRe = regexp.MustCompile(`<!--\s*/?wp:[^>]*-->`)

// FromHTML converts a post's rendered HTML back to markdown for local
// viewing and editing.
func FromHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	html = blockDelimiterRe.ReplaceAllString(html, "")

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}
