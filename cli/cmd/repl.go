package cmd

import (
	"context"

	"github.com/ardnew/wtmpl/cli/cmd/repl"
	"github.com/ardnew/wtmpl/log"
)

// Repl starts an interactive session that interprets each entered line.
type Repl struct {
	History string `default:"${cache}" help:"Directory holding the history file." type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, r.History, log.Default())
}
