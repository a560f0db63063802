package val

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/wikitext"
)

// Result describes one evaluation.
type Result struct {
	Input   string
	Output  string // Input unless Outcome is Matched
	Outcome Outcome
	Rule    string // name of the rule that fired, if any
	Err     error  // cause of a Malformed outcome
}

// Attrs returns the result as structured logging attributes.
func (r Result) Attrs() []slog.Attr {
	attrs := []slog.Attr{slog.String("outcome", r.Outcome.String())}

	if r.Rule != "" {
		attrs = append(attrs, slog.String("rule", r.Rule))
	}

	if r.Err != nil {
		attrs = append(attrs, slog.Any("error", r.Err))
	}

	return attrs
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// WithRules replaces the default cascade. Rules are tried in the given
// order.
func WithRules(rules ...Rule) Option {
	return func(in *Interpreter) { in.rules = slices.Clone(rules) }
}

// Interpreter evaluates value invocations against an ordered rule cascade.
type Interpreter struct {
	logger log.Logger
	rules  []Rule
}

// New returns an interpreter using the default cascade.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{rules: defaultRules}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Rules returns the interpreter's cascade in priority order.
func (in *Interpreter) Rules() []Rule { return slices.Clone(in.rules) }

// Evaluate tries each rule in order against text. It never fails: when no
// rule matches, or the matching rule cannot produce usable output, the
// result's Output is text.
func (in *Interpreter) Evaluate(ctx context.Context, text string) (res Result) {
	res = Result{Input: text, Output: text, Outcome: NoMatch}

	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Input:   text,
				Output:  text,
				Outcome: Malformed,
				Rule:    res.Rule,
				Err:     ErrRecovered.With(slog.String("panic", fmt.Sprint(r))),
			}

			in.logger.TraceContext(ctx, "rule malformed", res.Attrs()...)
		}
	}()

	for _, rule := range in.rules {
		groups := rule.match(text)
		if groups == nil {
			continue
		}

		res.Rule = rule.Name

		if i := nestedCapture(groups); i > 0 {
			res.Outcome = Malformed
			res.Err = ErrMalformed.With(
				slog.Int("capture", i),
				slog.String("text", groups[i]),
			)

			in.logger.TraceContext(ctx, "rule malformed", res.Attrs()...)

			return res
		}

		res.Output = rule.format(groups)
		res.Outcome = Matched

		in.logger.TraceContext(ctx, "rule matched", res.Attrs()...)

		return res
	}

	return res
}

// Interpret returns the rendering of text, or text itself when no rule
// applies.
func (in *Interpreter) Interpret(ctx context.Context, text string) string {
	return in.Evaluate(ctx, text).Output
}

// Expand replaces every top-level value invocation in doc with its
// interpretation. Other text, including other invocations, is unchanged.
func (in *Interpreter) Expand(ctx context.Context, doc string) string {
	return wikitext.ExpandFunc(doc, func(span wikitext.Span) string {
		if !isValueName(span.Name()) {
			return span.Text
		}

		return in.Interpret(ctx, span.Text)
	})
}

// nestedCapture returns the index of the first capture that contains
// invocation delimiters, or 0.
func nestedCapture(groups []string) int {
	for i, g := range groups[1:] {
		if strings.Contains(g, "{{") || strings.Contains(g, "}}") {
			return i + 1
		}
	}

	return 0
}

// IsValue reports whether text is a single invocation of the value macro.
// The first letter of the name is case-insensitive.
func IsValue(text string) bool {
	text = strings.TrimSpace(text)

	for span := range wikitext.Scan(text) {
		return span.Start == 0 && span.End == len(text) && isValueName(span.Name())
	}

	return false
}

func isValueName(name string) bool {
	return name == "val" || name == "Val"
}

var std = New()

// Evaluate evaluates text with the default interpreter.
func Evaluate(text string) Result {
	return std.Evaluate(context.Background(), text)
}

// Interpret renders text with the default interpreter.
func Interpret(text string) string {
	return std.Interpret(context.Background(), text)
}

// Expand expands value invocations in doc with the default interpreter.
func Expand(doc string) string {
	return std.Expand(context.Background(), doc)
}
