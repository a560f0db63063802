package wikitext

import (
	"errors"
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	ts := []*Template{
		MustParse("{{val|3.7|e=10}}"),
		MustParse("{{val|11|x|33}}"),
		MustParse("{{cite web|title=A}}"),
	}

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "empty selects all", source: "", want: []string{"{{val|3.7|e=10}}", "{{val|11|x|33}}", "{{cite web|title=A}}"}},
		{name: "by name", source: `name == "cite web"`, want: []string{"{{cite web|title=A}}"}},
		{name: "named key", source: `"e" in named`, want: []string{"{{val|3.7|e=10}}"}},
		{name: "positional count", source: `len(positional) == 3`, want: []string{"{{val|11|x|33}}"}},
		{name: "param value", source: `"x" in params && count > 2`, want: []string{"{{val|11|x|33}}"}},
		{name: "none", source: `name startsWith "z"`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.source, ts)
			if err != nil {
				t.Fatal(err)
			}

			var rendered []string
			for _, tmpl := range got {
				rendered = append(rendered, tmpl.Render())
			}

			if !slices.Equal(rendered, tt.want) {
				t.Errorf("Select(%q) = %v, want %v", tt.source, rendered, tt.want)
			}
		})
	}
}

func TestNewSelector_Errors(t *testing.T) {
	for _, source := range []string{`name ==`, `name + 1`, `unknown == 1`} {
		if _, err := NewSelector(source); !errors.Is(err, ErrSelect) {
			t.Errorf("NewSelector(%q) error = %v, want ErrSelect", source, err)
		}
	}
}

func TestSelector_String(t *testing.T) {
	s, err := NewSelector(`name == "val"`)
	if err != nil {
		t.Fatal(err)
	}

	if s.String() != `name == "val"` {
		t.Errorf("String() = %q", s.String())
	}

	var nilSel *Selector
	if ok, err := nilSel.Match(New("x")); !ok || err != nil {
		t.Errorf("nil selector Match = %v, %v", ok, err)
	}
}
