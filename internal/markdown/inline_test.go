package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managerdocs/internal/markdown"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []markdown.Span
	}{
		{
			"plain only",
			"nothing special here",
			[]markdown.Span{{Kind: markdown.SpanPlain, Text: "nothing special here"}},
		},
		{
			"bold",
			"ship **now** please",
			[]markdown.Span{
				{Kind: markdown.SpanPlain, Text: "ship "},
				{Kind: markdown.SpanBold, Text: "now"},
				{Kind: markdown.SpanPlain, Text: " please"},
			},
		},
		{
			"italic",
			"*emphasis* first",
			[]markdown.Span{
				{Kind: markdown.SpanItalic, Text: "emphasis"},
				{Kind: markdown.SpanPlain, Text: " first"},
			},
		},
		{
			"code",
			"run `go vet` locally",
			[]markdown.Span{
				{Kind: markdown.SpanPlain, Text: "run "},
				{Kind: markdown.SpanCode, Text: "go vet"},
				{Kind: markdown.SpanPlain, Text: " locally"},
			},
		},
		{
			"link",
			"see [the doc](https://example.com/doc)",
			[]markdown.Span{
				{Kind: markdown.SpanPlain, Text: "see "},
				{Kind: markdown.SpanLink, Text: "the doc", URL: "https://example.com/doc"},
			},
		},
		{
			"mixed",
			"**bold** and *italic*",
			[]markdown.Span{
				{Kind: markdown.SpanBold, Text: "bold"},
				{Kind: markdown.SpanPlain, Text: " and "},
				{Kind: markdown.SpanItalic, Text: "italic"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markdown.ParseInline(tt.line))
		})
	}
}

// A malformed line falls back to a single plain span covering the whole line.
func TestParseInlineUnclosedFallback(t *testing.T) {
	lines := []string{
		"unclosed **bold marker",
		"unclosed *italic",
		"unclosed `code",
		"[text without url",
		"[text] (space breaks link)",
	}
	for _, line := range lines {
		spans := markdown.ParseInline(line)
		require.Len(t, spans, 1, "line %q", line)
		assert.Equal(t, markdown.SpanPlain, spans[0].Kind)
		assert.Equal(t, line, spans[0].Text)
	}
}

func TestParseInlineEmpty(t *testing.T) {
	assert.Empty(t, markdown.ParseInline(""))
}
