package md

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Fenced code must be immune to every later transform (a literal ** or
// | inside code is never markup), so the extract stage swaps each block
// for a marker and restore puts the rendered HTML back after inline
// processing. The marker format avoids every character another stage
// could reinterpret.
const (
	fenceMarkerPrefix = "WPPFENCE"
	fenceMarkerSuffix = "END"
)

type fenceStore struct {
	blocks []string
}

func fenceMarker(i int) string {
	return fenceMarkerPrefix + strconv.Itoa(i) + fenceMarkerSuffix
}

// fenceMarkerRe matches an entire marker line. The paragraph stage
// passes such lines through so restore swaps in the block untouched.
var fenceMarkerRe = regexp.MustCompile(`^` + fenceMarkerPrefix + `[0-9]+` + fenceMarkerSuffix + `$`)

func (s *fenceStore) extract(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "```") {
			out = append(out, lines[i])
			continue
		}
		lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		var body []string
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "```" {
				break
			}
			body = append(body, lines[j])
		}
		out = append(out, fenceMarker(len(s.blocks)))
		s.blocks = append(s.blocks, renderFence(lang, body))
		// An unterminated fence swallows the rest of the input.
		i = j
	}
	return strings.Join(out, "\n")
}

func renderFence(lang string, body []string) string {
	escaped := make([]string, len(body))
	for i, line := range body {
		escaped[i] = html.EscapeString(line)
	}
	code := strings.Join(escaped, "<br>")
	if lang != "" {
		return `<pre><code class="language-` + lang + `">` + code + "</code></pre>"
	}
	return "<pre><code>" + code + "</code></pre>"
}

func (s *fenceStore) restore(text string) string {
	for i, block := range s.blocks {
		text = strings.Replace(text, fenceMarker(i), block, 1)
	}
	return text
}
