package cmd

import (
	"context"
	"io"

	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/val"
)

// Expand replaces value invocations in a document with their rendering.
type Expand struct {
	Source []string `arg:"" help:"Source input file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the expand command.
func (e *Expand) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := readSources(ctx, e.Source)
	if err != nil {
		return err
	}

	in := val.New(val.WithLogger(log.Default()))

	if _, err := io.WriteString(stdoutFrom(ctx), in.Expand(ctx, text)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
