package md

import "strings"

// Metadata holds front matter key/value pairs. Values are either a
// string or a []string (bracketed lists); there is no nesting and no
// other coercion.
type Metadata map[string]any

// String returns the scalar value for key, or "" when the key is absent
// or holds a list.
func (m Metadata) String(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// List returns the list value for key. A scalar is promoted to a
// one-element list so callers can treat single values uniformly.
func (m Metadata) List(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

const frontMatterMarker = "---"

// Extract splits a document into front matter metadata and the markdown
// body. A document that does not open with a --- line, or whose front
// matter block is never closed, comes back whole with empty metadata;
// malformed front matter is not an error.
func Extract(doc string) (Metadata, string) {
	meta := Metadata{}
	lines := strings.Split(doc, "\n")
	if strings.TrimSpace(lines[0]) != frontMatterMarker {
		return meta, doc
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterMarker {
			end = i
			break
		}
	}
	if end == -1 {
		return meta, doc
	}

	for _, line := range lines[1:end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = parseValue(strings.TrimSpace(value))
	}

	return meta, strings.Join(lines[end+1:], "\n")
}

// parseValue applies the metadata typing rules in priority order:
// bracketed list, quoted string, raw trimmed text. List items are split
// on every comma; there is no way to escape a comma inside an item.
func parseValue(raw string) any {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		inner := raw[1 : len(raw)-1]
		if strings.TrimSpace(inner) == "" {
			return []string{}
		}
		parts := strings.Split(inner, ",")
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			items = append(items, strings.TrimSpace(p))
		}
		return items
	}
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}
