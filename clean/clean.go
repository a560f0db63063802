package clean

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/val"
	"github.com/ardnew/wtmpl/wikitext"
)

// Default namespace prefixes.
var (
	DefaultMediaPrefixes    = []string{"File", "Image", "Media"}
	DefaultCategoryPrefixes = []string{"Category"}
)

var (
	magicWord   = regexp.MustCompile(`__[A-Z]*__`)
	heading     = regexp.MustCompile(`(?m)^=+[ \t]*([^\n]*?)[ \t]*=+[ \t]*$`)
	emphasis    = regexp.MustCompile(`'{2,}`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
	trailingWS  = regexp.MustCompile(`(?m)[ \t]+$`)
	headingLine = regexp.MustCompile(`(?m)^=+[^\n]+?=+[ \t]*$`)
)

// Option configures a [Cleaner].
type Option func(*Cleaner)

// WithValues controls whether value invocations are expanded before other
// invocations are removed. Enabled by default.
func WithValues(enable bool) Option {
	return func(c *Cleaner) { c.values = enable }
}

// WithInterpreter sets the interpreter used to expand value invocations.
func WithInterpreter(in *val.Interpreter) Option {
	return func(c *Cleaner) { c.interp = in }
}

// WithMediaPrefixes adds namespace aliases whose links are removed.
func WithMediaPrefixes(prefixes ...string) Option {
	return func(c *Cleaner) { c.mediaPrefixes = append(c.mediaPrefixes, prefixes...) }
}

// WithCategoryPrefixes adds namespace aliases whose prefix is stripped.
func WithCategoryPrefixes(prefixes ...string) Option {
	return func(c *Cleaner) { c.categoryPrefixes = append(c.categoryPrefixes, prefixes...) }
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(c *Cleaner) { c.logger = logger }
}

// Cleaner converts wikitext to plain text. It is safe for concurrent use.
type Cleaner struct {
	logger           log.Logger
	interp           *val.Interpreter
	values           bool
	mediaPrefixes    []string
	categoryPrefixes []string
	media            *regexp.Regexp
	category         *regexp.Regexp
}

// New returns a cleaner configured by opts.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		values:           true,
		mediaPrefixes:    append([]string(nil), DefaultMediaPrefixes...),
		categoryPrefixes: append([]string(nil), DefaultCategoryPrefixes...),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.interp == nil {
		c.interp = val.New(val.WithLogger(c.logger))
	}

	c.media = prefixPattern(c.mediaPrefixes)
	c.category = prefixPattern(c.categoryPrefixes)

	return c
}

// Split divides text into the lead and one chunk per heading. Each heading
// chunk starts with its heading line. An empty lead is omitted.
func Split(text string) []string {
	var chunks []string

	last := 0
	for _, loc := range headingLine.FindAllStringIndex(text, -1) {
		if loc[0] > 0 {
			chunks = append(chunks, text[last:loc[0]])
		}

		last = loc[0]
	}

	return append(chunks, text[last:])
}

// Sections returns the cleaned text of each section of text, in order.
// Sections that clean to nothing are omitted.
func (c *Cleaner) Sections(ctx context.Context, text string) []string {
	var out []string

	for i, chunk := range Split(text) {
		cleaned := c.Section(ctx, chunk)

		c.logger.TraceContext(ctx, "section cleaned",
			slog.Int("section", i),
			slog.Int("source_bytes", len(chunk)),
			slog.Int("clean_bytes", len(cleaned)))

		if cleaned != "" {
			out = append(out, cleaned)
		}
	}

	return out
}

// Document returns the cleaned sections of text separated by blank lines.
func (c *Cleaner) Document(ctx context.Context, text string) string {
	return strings.Join(c.Sections(ctx, text), "\n\n")
}

// Section cleans a single section.
func (c *Cleaner) Section(ctx context.Context, text string) string {
	if c.values {
		text = c.interp.Expand(ctx, text)
	}

	text = wikitext.ExpandFunc(text, func(wikitext.Span) string { return "" })
	text = dropTables(text)
	text = stripTags(text)
	text = c.links(text)
	text = externalLinks(text)
	text = emphasis.ReplaceAllString(text, "")
	text = heading.ReplaceAllString(text, "$1")
	text = magicWord.ReplaceAllString(text, "")
	text = trailingWS.ReplaceAllString(text, "")
	text = blankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// dropTables removes wiki tables ({| ... |}), which open and close at the
// start of a line and may nest.
func dropTables(text string) string {
	if !strings.Contains(text, "{|") {
		return text
	}

	var (
		sb    strings.Builder
		depth int
	)

	for line := range strings.Lines(text) {
		trimmed := strings.TrimLeft(line, " \t")

		switch {
		case strings.HasPrefix(trimmed, "{|"):
			depth++

		case depth > 0 && strings.HasPrefix(trimmed, "|}"):
			depth--

		case depth == 0:
			sb.WriteString(line)
		}
	}

	return sb.String()
}

var std = New()

// Sections cleans text with the default cleaner.
func Sections(text string) []string {
	return std.Sections(context.Background(), text)
}

// Document cleans text with the default cleaner.
func Document(text string) string {
	return std.Document(context.Background(), text)
}
