package wikitext

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// selectEnv is the environment visible to selection expressions.
type selectEnv struct {
	Name       string            `expr:"name"`
	Params     []string          `expr:"params"`
	Named      map[string]string `expr:"named"`
	Positional []string          `expr:"positional"`
	Count      int               `expr:"count"`
}

func makeSelectEnv(t *Template) selectEnv {
	env := selectEnv{
		Name:  t.name,
		Named: make(map[string]string),
		Count: len(t.params),
	}

	for _, p := range t.params {
		env.Params = append(env.Params, p.Value)

		if p.Key.IsNamed() {
			env.Named[p.Key.Name()] = p.Value
		} else {
			env.Positional = append(env.Positional, p.Value)
		}
	}

	return env
}

// Selector is a compiled boolean expression over a template.
//
// The expression sees name (string), params (all values in order), named
// (map of explicit names to values), positional (positional values in
// order) and count (parameter count). For example:
//
//	name == "val" && "u" in named
type Selector struct {
	source  string
	program *vm.Program
}

// NewSelector compiles source. An empty source selects every template.
func NewSelector(source string) (*Selector, error) {
	s := &Selector{source: source}
	if source == "" {
		return s, nil
	}

	program, err := expr.Compile(source, expr.Env(selectEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrSelect.Wrap(err).With(slog.String("source", source))
	}

	s.program = program

	return s, nil
}

// String returns the expression source.
func (s *Selector) String() string { return s.source }

// Match reports whether t satisfies the expression.
func (s *Selector) Match(t *Template) (bool, error) {
	if s == nil || s.program == nil {
		return true, nil
	}

	out, err := expr.Run(s.program, makeSelectEnv(t))
	if err != nil {
		return false, ErrSelect.Wrap(err).With(
			slog.String("source", s.source),
			slog.String("template", t.name),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns the templates satisfying the expression, in order.
func (s *Selector) Select(ts []*Template) ([]*Template, error) {
	var out []*Template

	for _, t := range ts {
		ok, err := s.Match(t)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, t)
		}
	}

	return out, nil
}

// Select compiles source and applies it to ts.
func Select(source string, ts []*Template) ([]*Template, error) {
	s, err := NewSelector(source)
	if err != nil {
		return nil, err
	}

	return s.Select(ts)
}
