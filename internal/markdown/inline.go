package markdown

import "strings"

type SpanKind string

const (
	SpanPlain  SpanKind = "plain"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
	SpanCode   SpanKind = "code"
	SpanLink   SpanKind = "link"
)

// Span is one inline run of styled text within a block's line.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
	URL  string   `json:"url,omitempty"`
}

// ParseInline resolves **bold**, *italic*, `code`, and [text](url) runs.
// If any marker is left unclosed the whole line is returned as a single plain
// span: one malformed line must never break the rest of the render.
func ParseInline(line string) []Span {
	spans, ok := parseSpans(line)
	if !ok {
		return []Span{{Kind: SpanPlain, Text: line}}
	}
	return spans
}

func parseSpans(line string) ([]Span, bool) {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Kind: SpanPlain, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(line) {
		rest := line[i:]
		switch {
		case strings.HasPrefix(rest, "**"):
			end := strings.Index(rest[2:], "**")
			if end < 0 {
				return nil, false
			}
			flush()
			spans = append(spans, Span{Kind: SpanBold, Text: rest[2 : 2+end]})
			i += 4 + end

		case rest[0] == '*':
			end := strings.IndexByte(rest[1:], '*')
			if end < 0 {
				return nil, false
			}
			flush()
			spans = append(spans, Span{Kind: SpanItalic, Text: rest[1 : 1+end]})
			i += 2 + end

		case rest[0] == '`':
			end := strings.IndexByte(rest[1:], '`')
			if end < 0 {
				return nil, false
			}
			flush()
			spans = append(spans, Span{Kind: SpanCode, Text: rest[1 : 1+end]})
			i += 2 + end

		case rest[0] == '[':
			closeBracket := strings.IndexByte(rest, ']')
			if closeBracket < 0 || closeBracket+1 >= len(rest) || rest[closeBracket+1] != '(' {
				return nil, false
			}
			closeParen := strings.IndexByte(rest[closeBracket:], ')')
			if closeParen < 0 {
				return nil, false
			}
			flush()
			spans = append(spans, Span{
				Kind: SpanLink,
				Text: rest[1:closeBracket],
				URL:  rest[closeBracket+2 : closeBracket+closeParen],
			})
			i += closeBracket + closeParen + 1

		default:
			plain.WriteByte(rest[0])
			i++
		}
	}
	flush()
	if spans == nil {
		spans = []Span{}
	}
	return spans, true
}
