package md

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hrRe      = regexp.MustCompile(`^[ \t]*(-{3}|_{3}|\*{3})[ \t]*$`)
	headingRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.*)$`)
)

// horizontalRules runs before list and paragraph handling so a bare ---
// is never read as a list dash or folded into a paragraph.
func horizontalRules(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if hrRe.MatchString(line) {
			lines[i] = "<hr>"
		}
	}
	return strings.Join(lines, "\n")
}

func headings(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := strconv.Itoa(len(m[1]))
		lines[i] = "<h" + level + ">" + strings.TrimSpace(m[2]) + "</h" + level + ">"
	}
	return strings.Join(lines, "\n")
}
