package wikitext

import (
	"log/slog"

	"github.com/ardnew/wtmpl/pkg"
)

// Predefined errors (sentinel values).
var (
	// ErrLookup is returned by [Template.Get] when neither the explicit name
	// nor the sequence position resolves to a parameter.
	ErrLookup = pkg.NewError("parameter not found")

	// ErrIndexOutOfRange is returned by [Template.Set] for a positional key
	// beyond the end of the parameter list.
	ErrIndexOutOfRange = pkg.NewError("parameter index out of range")

	// ErrUnsupported is returned by [Template.Set] for a positional key
	// strictly inside the parameter list. Renumbering semantics for
	// interior positions are undefined, so the write is refused.
	ErrUnsupported = pkg.NewError("unsupported parameter update")

	// ErrInvalidKey is returned for keys that are neither named nor
	// positional.
	ErrInvalidKey = pkg.NewError("invalid parameter key")

	ErrParse      = pkg.NewError("invalid template invocation")
	ErrReadInput  = pkg.NewError("failed to read input")
	ErrSelect     = pkg.NewError("invalid selection expression")
	ErrDecode     = pkg.NewError("failed to decode template")
	ErrEmptyName  = pkg.NewError("empty template name")
	ErrUnexpected = pkg.NewError("unexpected input")
)

// Position is a location in parsed source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in runes
}

// attrs returns the position as structured logging attributes.
func (p Position) attrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("line", p.Line),
		slog.Int("column", p.Column),
		slog.Int("offset", p.Offset),
	}
}
