package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	stdinKey  struct{}
	stdoutKey struct{}
)

// WithStdio returns a new context.Context whose commands read standard input
// from in and write results to out. Nil values keep the process streams.
func WithStdio(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	if in != nil {
		ctx = context.WithValue(ctx, stdinKey{}, in)
	}

	if out != nil {
		ctx = context.WithValue(ctx, stdoutKey{}, out)
	}

	return ctx
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok {
		return r
	}

	return os.Stdin
}

func stdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok {
		return w
	}

	return os.Stdout
}

// sourceFiles reads a set of source files in order, followed by standard
// input if it was named.
type sourceFiles struct {
	read  []io.Reader
	close []io.Closer
	stdin io.Reader
}

// Read implements io.Reader.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	return io.MultiReader(s.readers()...).Read(p)
}

// WriteTo implements io.WriterTo.
func (s *sourceFiles) WriteTo(w io.Writer) (n int64, err error) {
	return io.Copy(w, io.MultiReader(s.readers()...))
}

// Close closes every opened file.
func (s *sourceFiles) Close() error {
	var first error

	for _, c := range s.close {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func (s *sourceFiles) readers() []io.Reader {
	if s.stdin == nil {
		return s.read
	}

	return append(append([]io.Reader(nil), s.read...), s.stdin)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSources opens the given sources for sequential reading.
//
// Duplicate paths are read once, compared by device/inode after resolving
// symlinks. Every occurrence of "-" stands for a single read of standard
// input, placed after all regular files. No sources means standard input.
func openSources(ctx context.Context, sources []string) (*sourceFiles, error) {
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	var srcs sourceFiles

	seen := make(map[fileKey]struct{})

	for _, src := range sources {
		if src == stdinSource {
			srcs.stdin = stdinFrom(ctx)

			continue
		}

		file, ok, err := openUniqueFile(src, seen)
		if err != nil {
			_ = srcs.Close()

			return nil, err
		}

		if ok {
			srcs.read = append(srcs.read, file)
			srcs.close = append(srcs.close, file)
		}
	}

	return &srcs, nil
}

// readSources returns the concatenated content of the given sources.
func readSources(ctx context.Context, sources []string) (string, error) {
	srcs, err := openSources(ctx, sources)
	if err != nil {
		return "", ErrReadSource.Wrap(err)
	}
	defer srcs.Close()

	data, err := io.ReadAll(srcs)
	if err != nil {
		return "", ErrReadSource.Wrap(err)
	}

	return string(data), nil
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
func openUniqueFile(
	path string,
	seen map[fileKey]struct{},
) (*os.File, bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return nil, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false, err
	}

	return file, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
