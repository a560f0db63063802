package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/wtmpl/clean"
	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/val"
)

// Clean converts a wikitext page to plain text, section by section.
type Clean struct {
	NoValues bool     `help:"Remove value invocations instead of rendering them." name:"no-values"`
	Media    []string `help:"Additional media namespace aliases whose links are removed." placeholder:"PREFIX"`
	Category []string `help:"Additional category namespace aliases whose prefix is stripped." placeholder:"PREFIX"`

	Source []string `arg:"" help:"Source input file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the clean command.
func (c *Clean) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := readSources(ctx, c.Source)
	if err != nil {
		return err
	}

	logger := log.Default()

	cleaner := clean.New(
		clean.WithLogger(logger),
		clean.WithValues(!c.NoValues),
		clean.WithInterpreter(val.New(val.WithLogger(logger))),
		clean.WithMediaPrefixes(c.Media...),
		clean.WithCategoryPrefixes(c.Category...),
	)

	sections := cleaner.Sections(ctx, text)

	log.DebugContext(ctx, "clean",
		slog.Int("source_bytes", len(text)),
		slog.Int("sections", len(sections)),
	)

	w := stdoutFrom(ctx)

	for i, section := range sections {
		sep := "\n"
		if i < len(sections)-1 {
			sep = "\n\n"
		}

		if _, err := fmt.Fprint(w, section, sep); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
