// Package cli contains the command line interface for wtmpl.
//
// # Usage
//
// Without a subcommand, wtmpl extracts every template invocation from its
// sources and prints each one in canonical form:
//
//	wtmpl page.wiki
//	wtmpl render -F yaml -w 'name == "cite" && "url" in named' page.wiki
//
// Value invocations are interpreted by the val, expand and clean commands:
//
//	wtmpl val '{{val|3.7|e=10}}'
//	wtmpl expand page.wiki
//	wtmpl clean --media=Bild page.wiki
//
// # Configuration
//
// Flag defaults are read from config.yaml (or config.json) in the user
// configuration directory. The init command writes the current flag values
// there. Nested YAML keys are joined with "-" to form flag names.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//
// Then --pprof-mode selects a profile kind and --pprof-dir the output
// directory.
package cli
