// Package wikitext models template invocations embedded in wiki markup.
//
// An invocation is written
//
//	{{name|positional|key=value|...}}
//
// and is represented by a [Template]: a name plus an ordered list of
// [Param] values. Each parameter is keyed either by an explicit name
// ([Named]) or by its implicit 1-based position among the unnamed
// parameters ([Positional]). Positional indices are assigned when a
// parameter is inserted and never renumbered.
//
// # Lookup
//
// [Template.Get] resolves a key in two fixed steps: a named key matches the
// parameter with that explicit name; a positional key selects the parameter
// at that 1-based position in the full ordered sequence, whatever its key
// kind. There is no implicit conversion between names and numbers.
//
// # Rendering
//
// [Template.Render] produces the canonical form. Positional values are
// written bare unless they contain "=", in which case the index is written
// explicitly so that re-parsing yields the same parameter.
//
// # Parsing and scanning
//
// [ParseString] parses a single invocation. [Scan] walks a document and
// yields each top-level invocation span, which callers may parse or rewrite
// with [ExpandFunc]. Separators nested inside [[links]] or inner
// invocations never split parameters.
//
// All operations are pure functions over their inputs and are safe to use
// from multiple goroutines on distinct values.
package wikitext
