package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/wtmpl/log"
	"github.com/ardnew/wtmpl/val"
)

// Val interprets value invocations given as arguments, or one per input line.
type Val struct {
	Explain bool `help:"Print the outcome and matching rule after each result." short:"x"`

	Text []string `arg:"" help:"Invocations to interpret; reads lines from stdin if omitted." name:"text" optional:""`
}

// Run executes the val command.
func (v *Val) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	in := val.New(val.WithLogger(log.Default()))
	w := stdoutFrom(ctx)

	emit := func(text string) error {
		res := in.Evaluate(ctx, text)

		line := res.Output
		if v.Explain {
			line = explain(res)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	if len(v.Text) > 0 {
		for _, text := range v.Text {
			if err := emit(text); err != nil {
				return err
			}
		}

		return nil
	}

	return eachLine(stdinFrom(ctx), emit)
}

// explain formats a result as output, outcome and rule separated by tabs.
func explain(res val.Result) string {
	rule := res.Rule
	if rule == "" {
		rule = "-"
	}

	return strings.Join([]string{res.Output, res.Outcome.String(), rule}, "\t")
}

func eachLine(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return ErrReadSource.Wrap(err)
	}

	return nil
}
