package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wtmpl/cli/cmd"
)

func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()

	parser, err := kong.New(cli,
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.ExplicitGroups([]kong.Group{cli.Log.group(), cli.Pprof.group()}),
		kong.Vars{
			cmd.ConfigIdentifier: "config.yaml",
			cmd.CacheIdentifier:  t.TempDir(),
			"version":            "test",
		}.CloneWith(cli.Log.vars()).CloneWith(cli.Pprof.vars()),
	)
	if err != nil {
		t.Fatal(err)
	}

	return parser
}

func TestCLIParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli *CLI)
	}{
		{
			name:    "default_render",
			args:    []string{"page.wiki"},
			command: "render",
			check: func(t *testing.T, cli *CLI) {
				if cli.Render.Format != "native" || cli.Render.Indent != 2 {
					t.Errorf("render defaults = %+v", cli.Render)
				}
			},
		},
		{
			name:    "render_flags",
			args:    []string{"render", "-F", "yaml", "-w", `name == "val"`, "-"},
			command: "render",
			check: func(t *testing.T, cli *CLI) {
				if cli.Render.Format != "yaml" || cli.Render.Where != `name == "val"` {
					t.Errorf("render = %+v", cli.Render)
				}
			},
		},
		{
			name:    "val_explain",
			args:    []string{"val", "-x", "{{val|1|e=2}}"},
			command: "val",
			check: func(t *testing.T, cli *CLI) {
				if !cli.Val.Explain || len(cli.Val.Text) != 1 {
					t.Errorf("val = %+v", cli.Val)
				}
			},
		},
		{
			name:    "clean_prefixes",
			args:    []string{"clean", "--no-values", "--media=Bild,Datei"},
			command: "clean",
			check: func(t *testing.T, cli *CLI) {
				if !cli.Clean.NoValues || len(cli.Clean.Media) != 2 {
					t.Errorf("clean = %+v", cli.Clean)
				}
			},
		},
		{
			name:    "repl_history",
			args:    []string{"repl"},
			command: "repl",
			check: func(t *testing.T, cli *CLI) {
				if cli.Repl.History == "" {
					t.Error("repl history directory not defaulted")
				}
			},
		},
		{
			name:    "log_level",
			args:    []string{"--log-level=trace", "rules"},
			command: "rules",
			check: func(t *testing.T, cli *CLI) {
				if cli.Log.Level != "trace" {
					t.Errorf("log level = %q", cli.Log.Level)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cli CLI

			ktx, err := newTestParser(t, &cli).Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}

			if got := strings.Fields(ktx.Command())[0]; got != tt.command {
				t.Errorf("Command() = %q, want %q", got, tt.command)
			}

			tt.check(t, &cli)
		})
	}
}

func TestCLIParse_InvalidFormat(t *testing.T) {
	t.Parallel()

	var cli CLI

	if _, err := newTestParser(t, &cli).Parse([]string{"render", "-F", "xml"}); err == nil {
		t.Error("Parse() accepted an unknown format")
	}
}
