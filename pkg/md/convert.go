// Package md implements the markdown dialect used by wpp: a front
// matter extractor and a line-oriented markdown-to-HTML converter. The
// converter is hand-rolled on purpose; it covers the constrained
// dialect posts are written in, not CommonMark.
package md

// A stage rewrites the whole working text and hands it to the next
// stage. Stage order is fixed and significant.
type stage func(string) string

// Convert renders a markdown body as HTML. It is total: any input
// produces a best-effort rendering, never an error. Unterminated
// fences, tables and lists are force-closed at end of input.
func Convert(body string) string {
	fences := &fenceStore{}
	stages := []stage{
		fences.extract, // first: fence content must survive every later stage
		horizontalRules,
		headings,
		tables,
		lists,
		paragraphs, // block structure settles before any inline rewriting
		inlineSpans,
		fences.restore, // after inline so code is never re-marked-up
	}
	out := body
	for _, s := range stages {
		out = s(out)
	}
	return out
}

// Render converts a full document: front matter first, then the body.
func Render(doc string) (string, Metadata) {
	meta, body := Extract(doc)
	return Convert(body), meta
}
