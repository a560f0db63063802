// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are immutable values. Configuration is applied at creation time
// with functional options and every derived logger ([Logger.Wrap],
// [Logger.With]) gets its own copy.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("document expanded", slog.Int("invocations", 12))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Supported Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Library packages in this module log only at trace level, so a logger at the
// default level stays quiet unless the caller asks for detail.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled, both
// formats are rendered with lipgloss styles for the terminal.
//
// A zero Logger discards everything, which makes it a safe default for
// optional logger fields.
package log
