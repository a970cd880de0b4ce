package md

import "strings"

// tables turns every maximal run of consecutive |-containing lines into
// a table: the first line is the header row, a following separator row
// is consumed without output, everything after is a body row. The run
// ends at the first line without a pipe, and at end of input.
func tables(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	inTable := false
	separatorConsumed := false

	closeTable := func() {
		if inTable {
			out = append(out, "</tbody>", "</table>")
			inTable = false
			separatorConsumed = false
		}
	}

	for _, line := range lines {
		if !strings.Contains(line, "|") {
			closeTable()
			out = append(out, line)
			continue
		}
		if !inTable {
			inTable = true
			out = append(out, "<table>", "<thead>", renderTableRow(line, "th"), "</thead>", "<tbody>")
			continue
		}
		if !separatorConsumed && isTableSeparator(line) {
			separatorConsumed = true
			continue
		}
		out = append(out, renderTableRow(line, "td"))
	}
	closeTable()

	return strings.Join(out, "\n")
}

// isTableSeparator reports whether the line is a header separator row
// such as |---|:--:|, containing only pipes, dashes, colons and
// whitespace.
func isTableSeparator(line string) bool {
	if !strings.Contains(line, "-") {
		return false
	}
	for _, r := range line {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// renderTableRow strips one optional leading and one optional trailing
// pipe, splits on the rest, and trims every cell.
func renderTableRow(line, cellTag string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")

	var b strings.Builder
	b.WriteString("<tr>")
	for _, cell := range strings.Split(s, "|") {
		b.WriteString("<" + cellTag + ">" + strings.TrimSpace(cell) + "</" + cellTag + ">")
	}
	b.WriteString("</tr>")
	return b.String()
}
