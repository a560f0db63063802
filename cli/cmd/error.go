package cmd

import "github.com/ardnew/wtmpl/pkg"

// Predefined errors (sentinel values).
var (
	ErrReadSource  = pkg.NewError("read source")
	ErrWriteOutput = pkg.NewError("write output")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoContext   = pkg.NewError("command context unavailable")
)
