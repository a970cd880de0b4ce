package md

import (
	"regexp"
	"strconv"
	"strings"
)

type listKind int

const (
	bulleted listKind = iota
	numbered
)

func (k listKind) openTag() string {
	if k == numbered {
		return "<ol>"
	}
	return "<ul>"
}

func (k listKind) closeTag() string {
	if k == numbered {
		return "</ol>"
	}
	return "</ul>"
}

// listFrame is one open list element. Frame levels are strictly
// increasing from the bottom of the stack to the top; only one frame
// exists per level.
type listFrame struct {
	kind     listKind
	level    int
	counter  int  // last explicit or implied item number (numbered lists)
	explicit bool // once true, items carry explicit value attributes
	itemLine int  // index in out of the still-open <li>, -1 when none
}

// listItemRe: optional tab/space indentation, a bullet or numeric
// marker, required whitespace, content. A full-width space before the
// marker fails the match on purpose: it is paragraph indentation, not
// list nesting.
var listItemRe = regexp.MustCompile(`^([ \t]*)([-+*]|\d+\.)[ \t]+(.+)$`)

// indentLevel computes the nesting level: one per tab, one per two
// spaces (floor). A single space never advances the level.
func indentLevel(ws string) int {
	tabs := 0
	spaces := 0
	for _, r := range ws {
		if r == '\t' {
			tabs++
		} else {
			spaces++
		}
	}
	return tabs + spaces/2
}

type listMachine struct {
	stack []listFrame
	out   []string
}

func (m *listMachine) emit(line string) {
	m.out = append(m.out, line)
}

func (m *listMachine) top() *listFrame {
	return &m.stack[len(m.stack)-1]
}

// closeItem closes the top frame's open item. The closing tag folds
// onto the item's own line unless a nested list was emitted since.
func (m *listMachine) closeItem() {
	top := m.top()
	if top.itemLine < 0 {
		return
	}
	if top.itemLine == len(m.out)-1 {
		m.out[top.itemLine] += "</li>"
	} else {
		m.emit("</li>")
	}
	top.itemLine = -1
}

func (m *listMachine) pop() {
	m.closeItem()
	m.emit(m.top().kind.closeTag())
	m.stack = m.stack[:len(m.stack)-1]
}

func (m *listMachine) closeAll() {
	for len(m.stack) > 0 {
		m.pop()
	}
}

// item runs the per-line transition for a list-item line at level with
// the given kind. number is the explicit marker number for numbered
// items and ignored for bullets.
func (m *listMachine) item(level int, kind listKind, number int, content string) {
	for len(m.stack) > 0 && m.top().level > level {
		m.pop()
	}
	// Switching kind at the same depth starts a new list; it never merges.
	if len(m.stack) > 0 && m.top().level == level && m.top().kind != kind {
		m.pop()
	}
	if len(m.stack) == 0 || m.top().level < level {
		m.stack = append(m.stack, listFrame{kind: kind, level: level, itemLine: -1})
		m.emit(kind.openTag())
	}

	m.closeItem()
	top := m.top()
	open := "<li>"
	if kind == numbered {
		if number != top.counter+1 {
			top.explicit = true
		}
		if top.explicit {
			open = `<li value="` + strconv.Itoa(number) + `">`
		}
		top.counter = number
	}
	top.itemLine = len(m.out)
	// Item content is emitted raw; the inline stage rewrites it later
	// so code spans are protected exactly once.
	m.emit(open + content)
}

// lists is the nested-list stage: a state machine over the line stream
// with one transition per line. Every opened tag is closed by the time
// it returns, including at end of input.
func lists(text string) string {
	lines := strings.Split(text, "\n")
	m := &listMachine{}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if g := listItemRe.FindStringSubmatch(line); g != nil {
			level := indentLevel(g[1])
			kind := bulleted
			number := 0
			if g[2] != "-" && g[2] != "+" && g[2] != "*" {
				kind = numbered
				number, _ = strconv.Atoi(strings.TrimSuffix(g[2], "."))
			}
			m.item(level, kind, number, g[3])
			continue
		}

		if len(m.stack) == 0 {
			m.emit(line)
			continue
		}

		if strings.TrimSpace(line) == "" {
			// Look past the blank run: the list survives when another
			// item follows, and the blanks are absorbed.
			j := i
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) && listItemRe.MatchString(lines[j]) {
				i = j - 1
				continue
			}
			m.closeAll()
			m.emit(line)
			continue
		}

		// Any other line, headings and tables included, force-closes
		// every open frame and passes through unchanged.
		m.closeAll()
		m.emit(line)
	}
	m.closeAll()

	return strings.Join(m.out, "\n")
}
