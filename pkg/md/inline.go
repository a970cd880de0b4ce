package md

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

const (
	codeMarkerPrefix = "WPPCODE"
	codeMarkerSuffix = "END"
)

// Go's . does not match newlines, so these substitutions never cross a
// line boundary. None of the patterns nest quantifiers; worst-case time
// stays linear in the input.
var (
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")
	boldStarRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe  = regexp.MustCompile(`__(.+?)__`)
	strikeRe     = regexp.MustCompile(`~~(.+?)~~`)
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
)

// inlineSpans rewrites bold, strikethrough, inline code, images and
// links. Inline code is lifted out into markers first so that markers
// like ** inside backticks survive the other substitutions; images run
// before links so the leading ! is consumed with its bracket.
func inlineSpans(text string) string {
	var codes []string
	text = inlineCodeRe.ReplaceAllStringFunc(text, func(span string) string {
		inner := span[1 : len(span)-1]
		marker := codeMarkerPrefix + strconv.Itoa(len(codes)) + codeMarkerSuffix
		codes = append(codes, "<code>"+html.EscapeString(inner)+"</code>")
		return marker
	})

	text = boldStarRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = boldUnderRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = strikeRe.ReplaceAllString(text, "<del>$1</del>")
	text = imageRe.ReplaceAllString(text, `<img src="$2" alt="$1">`)
	text = linkRe.ReplaceAllString(text, `<a href="$2">$1</a>`)

	for i, code := range codes {
		text = strings.Replace(text, codeMarkerPrefix+strconv.Itoa(i)+codeMarkerSuffix, code, 1)
	}
	return text
}
