package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineSpans(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold asterisks",
			input:    "a **b** c",
			expected: "a <strong>b</strong> c",
		},
		{
			name:     "bold underscores",
			input:    "a __b__ c",
			expected: "a <strong>b</strong> c",
		},
		{
			name:     "strikethrough",
			input:    "a ~~b~~ c",
			expected: "a <del>b</del> c",
		},
		{
			name:     "inline code",
			input:    "run `make` now",
			expected: "run <code>make</code> now",
		},
		{
			name:     "code content html escaped",
			input:    "`<b> & \"q\"`",
			expected: "<code>&lt;b&gt; &amp; &#34;q&#34;</code>",
		},
		{
			name:     "image",
			input:    "![alt text](images/pic.png)",
			expected: `<img src="images/pic.png" alt="alt text">`,
		},
		{
			name:     "link",
			input:    "[text](https://example.com)",
			expected: `<a href="https://example.com">text</a>`,
		},
		{
			name:     "image before link so bang is consumed",
			input:    "![a](x.png) and [b](y)",
			expected: `<img src="x.png" alt="a"> and <a href="y">b</a>`,
		},
		{
			name:     "multiple code spans keep order",
			input:    "`one` and `two`",
			expected: "<code>one</code> and <code>two</code>",
		},
		{
			name:     "bold does not cross lines",
			input:    "**a\nb**",
			expected: "**a\nb**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inlineSpans(tt.input))
		})
	}
}

// Inline code is extracted to placeholders before any other inline
// substitution runs, so markers inside backticks always come out
// literal.
func TestInline_CodeProtectsBoldMarkers(t *testing.T) {
	assert.Equal(t, "<code>**x**</code>", inlineSpans("`**x**`"))
	assert.Equal(t, "<code>~~y~~</code> and <strong>z</strong>", inlineSpans("`~~y~~` and **z**"))
	assert.Equal(t, "<code>[не](ссылка)</code>", inlineSpans("`[не](ссылка)`"))
}
