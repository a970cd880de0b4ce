package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "paragraph with bold",
			input:    "<p>Hello <strong>World</strong></p>",
			expected: "Hello **World**",
		},
		{
			name:     "heading",
			input:    "<h2>Section</h2>",
			expected: "## Section",
		},
		{
			name:     "block delimiters stripped",
			input:    "<!-- wp:paragraph --><p>text</p><!-- /wp:paragraph -->",
			expected: "text",
		},
		{
			name:     "block delimiter with attributes stripped",
			input:    `<!-- wp:image {"id":42} --><figure><img src="a.png" alt="a"></figure><!-- /wp:image -->`,
			expected: "![a](a.png)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromHTML_List(t *testing.T) {
	got, err := FromHTML("<ul><li>one</li><li>two</li></ul>")
	require.NoError(t, err)
	assert.Contains(t, got, "- one")
	assert.Contains(t, got, "- two")
}
