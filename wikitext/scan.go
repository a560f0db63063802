package wikitext

import (
	"context"
	"iter"
	"strings"
)

// Span is a top-level invocation found in a document.
type Span struct {
	Start int    // byte offset of the opening delimiter
	End   int    // byte offset just past the closing delimiter
	Text  string // document[Start:End]
}

// Name returns the trimmed template name of the span without fully parsing
// it, or "" if the span has no name.
func (s Span) Name() string {
	body := strings.TrimSuffix(strings.TrimPrefix(s.Text, openDelim), closeDelim)

	end := strings.IndexAny(body, "|{[")
	if end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}

// Scan returns an iterator over the top-level invocations in text, in
// document order. Nested invocations are part of their enclosing span.
// An opening delimiter without a matching close is skipped.
func Scan(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i := 0; i < len(text); {
			start := strings.Index(text[i:], openDelim)
			if start < 0 {
				return
			}

			start += i

			end := matchClose(text, start)
			if end < 0 {
				i = start + len(openDelim)

				continue
			}

			if !yield(Span{Start: start, End: end, Text: text[start:end]}) {
				return
			}

			i = end
		}
	}
}

// matchClose returns the offset just past the delimiter closing the
// invocation opened at start, or -1.
func matchClose(text string, start int) int {
	depth := 0

	for i := start; i+1 < len(text); {
		switch text[i : i+2] {
		case openDelim:
			depth++
			i += 2

		case closeDelim:
			depth--
			i += 2

			if depth == 0 {
				return i
			}

		default:
			i++
		}
	}

	return -1
}

// ExpandFunc returns text with every top-level invocation replaced by
// fn(span). Text between invocations is copied unchanged.
func ExpandFunc(text string, fn func(Span) string) string {
	var (
		sb   strings.Builder
		last int
	)

	sb.Grow(len(text))

	for span := range Scan(text) {
		sb.WriteString(text[last:span.Start])
		sb.WriteString(fn(span))
		last = span.End
	}

	sb.WriteString(text[last:])

	return sb.String()
}

// Templates parses every top-level invocation in text. Spans that fail to
// parse are skipped.
func Templates(ctx context.Context, text string, opts ...Option) []*Template {
	var ts []*Template

	for span := range Scan(text) {
		t, err := ParseString(ctx, span.Text, opts...)
		if err != nil {
			continue
		}

		ts = append(ts, t)
	}

	return ts
}
