package val

import (
	"log/slog"
	"regexp"
	"slices"
)

// FormatFunc builds the output of a rule from its submatches. groups[0] is
// the whole invocation and groups[i] the i-th capture.
type FormatFunc func(groups []string) string

// Rule recognizes one shape of value invocation.
type Rule struct {
	// Name identifies the rule in results and logs.
	Name string
	// Shape is a representative invocation the rule recognizes.
	Shape string

	pattern *regexp.Regexp
	format  FormatFunc
}

// NewRule compiles pattern and returns a rule. The pattern is matched
// against the whole input.
func NewRule(name, shape, pattern string, format FormatFunc) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, ErrPattern.Wrap(err).With(
			slog.String("rule", name),
			slog.String("pattern", pattern),
		)
	}

	return Rule{Name: name, Shape: shape, pattern: re, format: format}, nil
}

// Pattern returns the source of the rule's regular expression.
func (r Rule) Pattern() string {
	if r.pattern == nil {
		return ""
	}

	return r.pattern.String()
}

// match returns the submatches of text, or nil.
func (r Rule) match(text string) []string {
	if r.pattern == nil {
		return nil
	}

	return r.pattern.FindStringSubmatch(text)
}

// invocation anchors body between the value-macro prefix and the closing
// delimiter. The macro name accepts a capitalized first letter.
func invocation(name, shape, body string, format FormatFunc) Rule {
	return Rule{
		Name:    name,
		Shape:   shape,
		pattern: regexp.MustCompile(`^\{\{[Vv]al\|` + body + `\}\}$`),
		format:  format,
	}
}

// defaultRules is the cascade in priority order. Each rule is a more
// specific shape than some rule after it.
var defaultRules = []Rule{
	// Value, uncertainty and a piped unit link, with an optional second
	// uncertainty that is dropped. Before "uncertainty-unit", which would
	// otherwise take the link markup as the unit.
	invocation("uncertainty-linked-unit",
		"{{val|877.75|0.50|0.44|u=[[second|s]]}}",
		`(.+?)\|(.+?)(?:\|(.+?))?\|u=\[\[(.+?)\|(.+?)\]\]`,
		func(g []string) string { return g[1] + "±" + g[2] + " " + g[5] }),

	// Exponent and unit with no mantissa. Before "unit", whose value
	// capture would swallow "e=".
	invocation("exponent-unit",
		"{{val|e=5|ul=m}}",
		`e=(.+?)\|ul=(.+?)`,
		func(g []string) string { return "10e" + g[1] + " " + g[2] }),

	invocation("exponent",
		"{{val|3.7|e=10}}",
		`(.+?)\|e=(.+?)`,
		func(g []string) string { return g[1] + "e" + g[2] }),

	invocation("unit",
		"{{val|4|ul=m2}}",
		`(.+?)\|ul=(.+?)`,
		func(g []string) string { return g[1] + " " + g[2] }),

	invocation("multiply",
		"{{val|11|x|33}}",
		`(.+?)\|x\|(.+?)`,
		func(g []string) string { return g[1] + "×" + g[2] }),

	invocation("commas",
		"{{val|1234|fmt=commas}}",
		`(.+?)\|fmt=commas`,
		func(g []string) string { return g[1] }),

	invocation("uncertainty-unit",
		"{{val|879.6|0.8|u=s}}",
		`(.+?)\|(.+?)\|u=(.+?)`,
		func(g []string) string { return g[1] + "±" + g[2] + " " + g[3] }),

	// The only rule that translates markup: "&sdot;" and "<sup>2</sup>".
	invocation("dot-product-unit",
		"{{val|5.4|u=[[kg]]&sdot;[[meter|m]]/s<sup>2</sup>}}",
		`(.+?)\|u=\[\[(.+?)\]\]&sdot;\[\[(.+?)\|(.+?)\]\]/s<sup>2</sup>`,
		func(g []string) string { return g[1] + " " + g[2] + "·" + g[4] + "/s²" }),
}

// Rules returns the default cascade in priority order.
func Rules() []Rule { return slices.Clone(defaultRules) }
