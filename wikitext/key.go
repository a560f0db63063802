package wikitext

import (
	"strconv"
	"strings"
)

// Key identifies a template parameter, either by explicit name or by
// implicit position.
type Key struct {
	name  string
	index int // 1-based; zero for named keys
}

// Named returns a key for the explicitly named parameter name.
func Named(name string) Key { return Key{name: name} }

// Positional returns a key for the parameter at 1-based index.
func Positional(index int) Key { return Key{index: index} }

// IsNamed reports whether k is an explicit name.
func (k Key) IsNamed() bool { return k.index == 0 && k.name != "" }

// IsPositional reports whether k is an implicit position.
func (k Key) IsPositional() bool { return k.index > 0 }

// IsZero reports whether k is neither named nor positional. Parameters with
// a zero key are assigned the next positional index on insertion.
func (k Key) IsZero() bool { return k == Key{} }

// Name returns the explicit name, or "" for positional keys.
func (k Key) Name() string { return k.name }

// Index returns the 1-based position, or 0 for named keys.
func (k Key) Index() int { return k.index }

// String returns the key as it appears before "=" in rendered output.
func (k Key) String() string {
	if k.IsPositional() {
		return strconv.Itoa(k.index)
	}

	return k.name
}

// Param is a single template parameter.
type Param struct {
	Key   Key
	Value string
}

// Arg returns a parameter with an explicit name.
func Arg(name, value string) Param { return Param{Key: Named(name), Value: value} }

// Pos returns an unnamed parameter. Its positional index is assigned when it
// is inserted into a [Template].
func Pos(value string) Param { return Param{Value: value} }

// String returns the parameter value.
func (p Param) String() string { return p.Value }

// render writes the parameter in canonical form, including the leading "|".
func (p Param) render() string {
	if p.Key.IsPositional() && !strings.Contains(p.Value, "=") {
		return "|" + p.Value
	}

	return "|" + p.Key.String() + "=" + p.Value
}
