// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "regexp"

// Span is a fragment of paragraph text with inline formatting applied.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Non-greedy so the first closing marker ends the span. Unmatched markers
// fall through as literal characters.
var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
)

// Spans splits paragraph text into formatted fragments: **bold** spans,
// *italic* spans, and literal text between them.
func Spans(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, italicSpans(text[last:m[0]])...)
		spans = append(spans, Span{Text: text[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	return append(spans, italicSpans(text[last:])...)
}

func italicSpans(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range italicRe.FindAllStringSubmatchIndex(text, -1) {
		if text[last:m[0]] != "" {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Italic: true})
		last = m[1]
	}
	if text[last:] != "" {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
