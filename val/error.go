package val

import "github.com/ardnew/wtmpl/pkg"

// Predefined errors (sentinel values). They are reported in [Result.Err]
// and never returned by [Interpret].
var (
	ErrMalformed = pkg.NewError("malformed value invocation")
	ErrRecovered = pkg.NewError("rule panicked")
	ErrPattern   = pkg.NewError("invalid rule pattern")
)
