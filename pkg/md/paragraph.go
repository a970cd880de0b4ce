package md

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// structuralTags is the closed set of tags the earlier stages emit,
// plus the raw HTML blocks posts commonly embed. A line opening with
// one of these never joins a paragraph.
var structuralTags = map[string]struct{}{
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"ul": {}, "ol": {}, "li": {},
	"table": {}, "thead": {}, "tbody": {}, "tr": {}, "th": {}, "td": {},
	"pre": {}, "code": {}, "hr": {}, "p": {}, "div": {}, "blockquote": {},
	"img": {}, "figure": {}, "iframe": {}, "script": {},
}

var (
	tagNameRe    = regexp.MustCompile(`^</?([a-zA-Z][a-zA-Z0-9]*)`)
	genericTagRe = regexp.MustCompile(`^</?[a-zA-Z][a-zA-Z0-9-]*([ \t][^>]*)?/?>`)
)

// isKnownBlockTag reports whether the line opens with a tag from the
// closed structural set.
func isKnownBlockTag(line string) bool {
	g := tagNameRe.FindStringSubmatch(strings.TrimSpace(line))
	if g == nil {
		return false
	}
	_, ok := structuralTags[strings.ToLower(g[1])]
	return ok
}

// isRawHTMLLine is the secondary rule: any line opening with a
// well-formed generic tag counts as raw embedded HTML and passes
// through verbatim.
func isRawHTMLLine(line string) bool {
	return genericTagRe.MatchString(strings.TrimSpace(line))
}

// paragraphs groups the remaining plain-text lines. A paragraph ends at
// a blank line, at a structural, raw-HTML or fence-marker line, or at
// end of input. Inline spans are still raw markdown at this point and
// never end a paragraph.
// Lines inside one paragraph keep the author's breaks via <br>, and
// leading whitespace is preserved as entities.
func paragraphs(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		out = append(out, "<p>"+strings.Join(buf, "<br>")+"</p>")
		buf = nil
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if isKnownBlockTag(line) || isRawHTMLLine(line) || fenceMarkerRe.MatchString(line) {
			flush()
			out = append(out, line)
			continue
		}
		buf = append(buf, escapeLeadingIndent(line))
	}
	flush()

	return strings.Join(out, "\n")
}

// escapeLeadingIndent converts leading spaces, tabs and full-width
// spaces to entities so browsers do not collapse them.
func escapeLeadingIndent(line string) string {
	var b strings.Builder
	rest := line
	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case ' ':
			b.WriteString("&nbsp;")
		case '\t':
			b.WriteString("&nbsp;&nbsp;&nbsp;&nbsp;")
		case '　':
			b.WriteString("&emsp;")
		default:
			b.WriteString(rest)
			return b.String()
		}
		rest = rest[size:]
	}
	return b.String()
}
