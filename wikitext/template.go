package wikitext

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
	paramDelim = "|"
)

// maxSuggestions bounds the "did you mean" names attached to lookup errors.
const maxSuggestions = 3

// Template is a parsed template invocation.
//
// The zero value is an unnamed template with no parameters.
// A Template must not be copied after first use; pass *Template.
type Template struct {
	name   string
	params []Param
	// positional is the last positional index handed out.
	positional int
}

// New returns a template with the given name and parameters inserted in
// order. Parameters without an explicit name are assigned consecutive
// positional indices starting at 1, regardless of any index they carry.
// A repeated explicit name overwrites the earlier value in place.
func New(name string, params ...Param) *Template {
	t := &Template{
		name:   name,
		params: make([]Param, 0, len(params)),
	}

	for _, p := range params {
		if p.Key.IsNamed() {
			t.upsert(p.Key.Name(), p.Value)

			continue
		}

		t.appendPositional(p.Value)
	}

	return t
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Len returns the number of parameters.
func (t *Template) Len() int { return len(t.params) }

// Params returns a copy of the parameters in insertion order, named and
// positional interleaved.
func (t *Template) Params() []Param { return slices.Clone(t.params) }

// All returns an iterator over the parameters in insertion order.
func (t *Template) All() iter.Seq2[Key, string] {
	return func(yield func(Key, string) bool) {
		for _, p := range t.params {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Has reports whether key resolves by [Template.Get].
func (t *Template) Has(key Key) bool {
	_, ok := t.lookup(key)

	return ok
}

// Get returns the parameter for key.
//
// A named key matches the parameter with that explicit name. A positional
// key selects the parameter at that 1-based position in the full sequence,
// counting named and positional parameters alike. Otherwise Get fails with
// [ErrLookup].
func (t *Template) Get(key Key) (Param, error) {
	if p, ok := t.lookup(key); ok {
		return p, nil
	}

	err := ErrLookup.With(
		slog.String("template", t.name),
		slog.String("key", key.String()),
		slog.Int("length", len(t.params)),
	)

	if key.IsNamed() {
		if hint := t.suggest(key.Name()); len(hint) > 0 {
			err = err.With(slog.Any("suggestions", hint))
		}
	}

	return Param{}, err
}

// Argument returns the parameter whose key is exactly Positional(index).
// Unlike [Template.Get], it does not count named parameters.
func (t *Template) Argument(index int) (Param, bool) {
	want := Positional(index)
	for _, p := range t.params {
		if p.Key == want {
			return p, true
		}
	}

	return Param{}, false
}

// Set writes value at key.
//
// For a named key the parameter is updated in place if present, or appended.
// For a positional key, index == Len() appends a new positional parameter
// and index > Len() fails with [ErrIndexOutOfRange]. Writing strictly inside
// the sequence fails with [ErrUnsupported] and leaves t unchanged.
func (t *Template) Set(key Key, value string) error {
	switch {
	case key.IsNamed():
		t.upsert(key.Name(), value)

		return nil

	case key.IsZero(), key.Index() < 0:
		return ErrInvalidKey.With(slog.String("template", t.name))
	}

	index, length := key.Index(), len(t.params)

	switch {
	case index == length:
		t.appendPositional(value)

		return nil

	case index > length:
		return ErrIndexOutOfRange.With(
			slog.String("template", t.name),
			slog.Int("index", index),
			slog.Int("length", length),
		)

	default:
		return ErrUnsupported.With(
			slog.String("template", t.name),
			slog.Int("index", index),
			slog.Int("length", length),
			slog.String("reason", "interior positional write"),
		)
	}
}

// Render returns the canonical invocation text.
func (t *Template) Render() string {
	var sb strings.Builder

	sb.WriteString(openDelim)
	sb.WriteString(t.name)

	for _, p := range t.params {
		sb.WriteString(p.render())
	}

	sb.WriteString(closeDelim)

	return sb.String()
}

// String implements fmt.Stringer using [Template.Render].
func (t *Template) String() string { return t.Render() }

// Equal reports whether t and other have the same name and the same set of
// key/value pairs. Parameter order is ignored.
func (t *Template) Equal(other *Template) bool {
	if t == nil || other == nil {
		return t == other
	}

	if t.name != other.name || len(t.params) != len(other.params) {
		return false
	}

	want := make(map[Key]string, len(t.params))
	for _, p := range t.params {
		want[p.Key] = p.Value
	}

	for _, p := range other.params {
		if v, ok := want[p.Key]; !ok || v != p.Value {
			return false
		}
	}

	return true
}

// EqualString reports whether the canonical rendering of t is exactly s.
func (t *Template) EqualString(s string) bool {
	return t != nil && t.Render() == s
}

// lookup resolves key without building an error.
func (t *Template) lookup(key Key) (Param, bool) {
	if key.IsNamed() {
		if i := t.indexOf(key.Name()); i >= 0 {
			return t.params[i], true
		}

		return Param{}, false
	}

	if i := key.Index(); i >= 1 && i <= len(t.params) {
		return t.params[i-1], true
	}

	return Param{}, false
}

func (t *Template) indexOf(name string) int {
	return slices.IndexFunc(t.params, func(p Param) bool {
		return p.Key.IsNamed() && p.Key.Name() == name
	})
}

func (t *Template) upsert(name, value string) {
	if i := t.indexOf(name); i >= 0 {
		t.params[i].Value = value

		return
	}

	t.params = append(t.params, Param{Key: Named(name), Value: value})
}

func (t *Template) appendPositional(value string) {
	t.positional++
	t.params = append(t.params, Param{Key: Positional(t.positional), Value: value})
}

// suggest returns explicit names that fuzzily match name.
func (t *Template) suggest(name string) []string {
	names := make([]string, 0, len(t.params))
	for _, p := range t.params {
		if p.Key.IsNamed() {
			names = append(names, p.Key.Name())
		}
	}

	matches := fuzzy.Find(name, names)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	hint := make([]string, 0, len(matches))
	for _, m := range matches {
		hint = append(hint, m.Str)
	}

	return hint
}
