package repl

import "github.com/ardnew/wtmpl/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds = pkg.NewError("index out of range")
	ErrHistory     = pkg.NewError("history file")
)
