package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "header separator body",
			input:    "| A | B |\n|---|---|\n| 1 | 2 |",
			expected: "<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>",
		},
		{
			name:     "no separator row",
			input:    "| A | B |\n| 1 | 2 |",
			expected: "<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>",
		},
		{
			name:     "header only table still closes",
			input:    "| A | B |",
			expected: "<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n</tbody>\n</table>",
		},
		{
			name:     "run ends at first line without a pipe",
			input:    "| A |\n| 1 |\nafter",
			expected: "<table>\n<thead>\n<tr><th>A</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td></tr>\n</tbody>\n</table>\nafter",
		},
		{
			name:     "cells trimmed and edge pipes optional",
			input:    "A | B\n1 | 2",
			expected: "<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>",
		},
		{
			name:     "alignment colons count as separator",
			input:    "| A | B |\n|:--|--:|\n| 1 | 2 |",
			expected: "<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>",
		},
		{
			name:     "dashes in a body cell are not a separator",
			input:    "| A |\n|---|\n| a - b |",
			expected: "<table>\n<thead>\n<tr><th>A</th></tr>\n</thead>\n<tbody>\n<tr><td>a - b</td></tr>\n</tbody>\n</table>",
		},
		{
			name:     "two tables split by plain line",
			input:    "| A |\nx\n| B |",
			expected: "<table>\n<thead>\n<tr><th>A</th></tr>\n</thead>\n<tbody>\n</tbody>\n</table>\nx\n<table>\n<thead>\n<tr><th>B</th></tr>\n</thead>\n<tbody>\n</tbody>\n</table>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tables(tt.input))
		})
	}
}

func TestIsTableSeparator(t *testing.T) {
	assert.True(t, isTableSeparator("|---|---|"))
	assert.True(t, isTableSeparator("|:--|--:|"))
	assert.True(t, isTableSeparator("| --- | --- |"))
	assert.False(t, isTableSeparator("| a | b |"))
	assert.False(t, isTableSeparator("|   |"), "needs at least one dash")
}
