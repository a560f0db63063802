package wikitext

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/wtmpl/log"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger used for trace output while parsing.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ParseReader parses a single invocation read from r.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a single invocation of the form {{name|p1|k=v|...}}.
// Leading and trailing whitespace around the invocation is ignored; any other
// text outside the delimiters is an error.
func ParseString(
	ctx context.Context,
	s string,
	opts ...Option,
) (*Template, error) {
	o := makeOptions(opts...)

	p := &parser{
		input: []byte(s),
		line:  1,
		col:   1,
	}

	t, err := p.parseInvocation()
	if err != nil {
		o.logger.TraceContext(ctx, "parse failed",
			slog.Any("error", err),
			slog.Int("source_bytes", len(s)))

		return nil, err
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.String("name", t.Name()),
		slog.Int("param_count", t.Len()))

	return t, nil
}

// MustParse is like [ParseString] but panics on error. It is intended for
// tests and package-level fixtures.
func MustParse(s string) *Template {
	t, err := ParseString(context.Background(), s)
	if err != nil {
		panic(err)
	}

	return t
}

// parser holds the parser state.
type parser struct {
	input []byte
	pos   int
	line  int
	col   int
}

// parseInvocation parses: ws '{{' Name ('|' Param)* '}}' ws EOF.
func (p *parser) parseInvocation() (*Template, error) {
	p.skipWhitespace()

	if !p.expectString(openDelim) {
		return nil, ErrParse.With(p.position().attrs()...).
			With(slog.String("expected", openDelim))
	}

	segments, err := p.splitSegments()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.eof() {
		return nil, ErrParse.Wrap(ErrUnexpected).
			With(p.position().attrs()...).
			With(slog.String("trailing", p.peekN(16)))
	}

	name := strings.TrimSpace(segments[0].text)
	if name == "" {
		return nil, ErrParse.Wrap(ErrEmptyName).
			With(segments[0].pos.attrs()...)
	}

	t := New(name)

	for _, seg := range segments[1:] {
		param := seg.param()

		switch {
		case param.Key.IsNamed() && param.Key.Name() == strconv.Itoa(t.positional+1):
			// Explicit index of the next positional parameter, as written by
			// Render for values containing '='.
			t.appendPositional(param.Value)

		case param.Key.IsNamed():
			t.upsert(param.Key.Name(), param.Value)

		default:
			t.appendPositional(param.Value)
		}
	}

	return t, nil
}

// segment is one '|'-separated piece of an invocation body.
type segment struct {
	text string
	pos  Position
	// eq is the byte offset of the first top-level '=' in text, or -1.
	eq int
}

// param classifies the segment as named or positional.
func (s segment) param() Param {
	if s.eq >= 0 {
		if name := strings.TrimSpace(s.text[:s.eq]); isParamName(name) {
			return Arg(name, s.text[s.eq+1:])
		}
	}

	return Pos(s.text)
}

// splitSegments consumes the invocation body up to and including the
// closing delimiter and splits it on top-level '|'.
//
// Separators and '=' inside nested [[...]] links or {{...}} invocations
// belong to the enclosing segment.
func (p *parser) splitSegments() ([]segment, error) {
	var (
		segments []segment
		links    int // open [[
		braces   int // open {{ beyond the outermost
	)

	start := p.position()
	current := segment{pos: start, eq: -1}

	flush := func() {
		current.text = string(p.input[current.pos.Offset:p.pos])
		segments = append(segments, current)
	}

	for !p.eof() {
		switch {
		case p.peekN(2) == closeDelim && braces == 0:
			flush()
			p.advanceN(2)

			return segments, nil

		case p.peekN(2) == closeDelim:
			braces--
			p.advanceN(2)

		case p.peekN(2) == openDelim:
			braces++
			p.advanceN(2)

		case p.peekN(2) == "[[":
			links++
			p.advanceN(2)

		case p.peekN(2) == "]]" && links > 0:
			links--
			p.advanceN(2)

		case p.peek() == '|' && links == 0 && braces == 0:
			flush()
			p.advance()
			current = segment{pos: p.position(), eq: -1}

		case p.peek() == '=' && links == 0 && braces == 0 && current.eq < 0:
			current.eq = p.pos - current.pos.Offset
			p.advance()

		default:
			p.advance()
		}
	}

	return nil, ErrParse.With(start.attrs()...).
		With(slog.String("expected", closeDelim))
}

// isParamName reports whether s can be used as an explicit parameter name.
func isParamName(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			r != '_' && r != '-' && r != ' ' {
			return false
		}
	}

	return true
}

// Helper methods

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(p.input[p.pos:])

	return r
}

func (p *parser) peekN(n int) string {
	if p.pos+n > len(p.input) {
		return string(p.input[p.pos:])
	}

	return string(p.input[p.pos : p.pos+n])
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRune(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

func (p *parser) advanceN(n int) {
	for range n {
		p.advance()
	}
}

func (p *parser) expectString(s string) bool {
	if p.peekN(len(s)) == s {
		p.advanceN(utf8.RuneCountInString(s))

		return true
	}

	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}
