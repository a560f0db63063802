package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/wikitext"
)

// Render parses every invocation in the input and prints it back in the
// chosen format.
type Render struct {
	Format string `default:"native" enum:"native,json,yaml" help:"Output format (${enum})."                   short:"F"`
	Indent int    `default:"2"                              help:"Indent width for JSON and YAML output; 0 for compact." short:"i"`
	Where  string `                                         help:"Select invocations with a boolean expression over name, params, named, positional, count." short:"w"`

	Source []string `arg:"" help:"Source input file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	selector, err := wikitext.NewSelector(r.Where)
	if err != nil {
		return err
	}

	text, err := readSources(ctx, r.Source)
	if err != nil {
		return err
	}

	all := wikitext.Templates(ctx, text, wikitext.WithLogger(log.Default()))

	ts, err := selector.Select(all)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "render",
		slog.Int("found", len(all)),
		slog.Int("selected", len(ts)),
		slog.String("format", r.Format),
	)

	w := stdoutFrom(ctx)

	switch r.Format {
	case "json":
		err = wikitext.FormatJSON(ctx, w, ts, r.Indent)

	case "yaml":
		err = wikitext.FormatYAML(ctx, w, ts, r.Indent)

	default:
		err = wikitext.FormatNative(ctx, w, ts)
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", r.Format))
	}

	return nil
}
