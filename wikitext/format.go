package wikitext

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
)

// document is the structured form of a template used by the JSON and YAML
// encodings.
type document struct {
	Name   string       `json:"name"             yaml:"name"`
	Params []paramEntry `json:"params,omitempty" yaml:"params,omitempty"`
}

// paramEntry is a parameter in a document. Exactly one of Name and Index is
// set.
type paramEntry struct {
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Index int    `json:"index,omitempty" yaml:"index,omitempty"`
	Value string `json:"value"           yaml:"value"`
}

func (t *Template) document() document {
	doc := document{Name: t.name}

	for _, p := range t.params {
		doc.Params = append(doc.Params, paramEntry{
			Name:  p.Key.Name(),
			Index: p.Key.Index(),
			Value: p.Value,
		})
	}

	return doc
}

func (doc document) template() (*Template, error) {
	if strings.TrimSpace(doc.Name) == "" {
		return nil, ErrDecode.Wrap(ErrEmptyName)
	}

	t := New(doc.Name)

	for i, e := range doc.Params {
		switch {
		case e.Name != "" && e.Index == 0:
			t.upsert(e.Name, e.Value)

		case e.Name == "" && e.Index > 0:
			t.appendPositional(e.Value)

		default:
			return nil, ErrDecode.Wrap(ErrInvalidKey).With(
				slog.Int("param", i),
				slog.String("name", e.Name),
				slog.Int("index", e.Index),
			)
		}
	}

	return t, nil
}

// MarshalJSON implements json.Marshaler.
func (t *Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.document())
}

// UnmarshalJSON implements json.Unmarshaler. Positional parameters are
// renumbered consecutively in document order.
func (t *Template) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrDecode.Wrap(err)
	}

	decoded, err := doc.template()
	if err != nil {
		return err
	}

	*t = *decoded

	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (t *Template) MarshalYAML() (any, error) {
	return t.document(), nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (t *Template) UnmarshalYAML(unmarshal func(any) error) error {
	var doc document
	if err := unmarshal(&doc); err != nil {
		return ErrDecode.Wrap(err)
	}

	decoded, err := doc.template()
	if err != nil {
		return err
	}

	*t = *decoded

	return nil
}

// FormatNative writes each template in canonical invocation syntax, one per
// line.
func FormatNative(_ context.Context, w io.Writer, ts []*Template) error {
	for _, t := range ts {
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the templates as a JSON array. A positive indent
// pretty-prints with that many spaces.
func FormatJSON(_ context.Context, w io.Writer, ts []*Template, indent int) error {
	if ts == nil {
		ts = []*Template{}
	}

	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(ts, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(ts)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the templates as a YAML sequence. A positive indent uses
// block style with that indentation; otherwise flow style is used.
func FormatYAML(ctx context.Context, w io.Writer, ts []*Template, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	docs := make([]document, 0, len(ts))
	for _, t := range ts {
		docs = append(docs, t.document())
	}

	yamlData, err := yaml.MarshalContext(ctx, docs, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// DecodeYAML reads a YAML sequence of templates as written by [FormatYAML].
func DecodeYAML(ctx context.Context, r io.Reader) ([]*Template, error) {
	var ts []*Template
	if err := yaml.NewDecoder(r).DecodeContext(ctx, &ts); err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, ErrDecode.Wrap(err)
	}

	return ts, nil
}
