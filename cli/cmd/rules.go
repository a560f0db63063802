package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/wtmpl/val"
)

// Rules lists the value rules in priority order.
type Rules struct {
	Patterns bool `help:"Include the regular expression of each rule." short:"p"`
}

// Run executes the rules command.
func (r *Rules) Run(ctx context.Context) error {
	headers := []string{"#", "RULE", "SHAPE", "RESULT"}
	if r.Patterns {
		headers = append(headers, "PATTERN")
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...)

	for i, rule := range val.Rules() {
		row := []string{fmt.Sprint(i + 1), rule.Name, rule.Shape, val.Interpret(rule.Shape)}
		if r.Patterns {
			row = append(row, rule.Pattern())
		}

		t.Row(row...)
	}

	if _, err := fmt.Fprintln(stdoutFrom(ctx), t.Render()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
