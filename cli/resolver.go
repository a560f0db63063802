package cli

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files such
// as the one written by the init command.
//
// Keys are flag names. Nested mappings join their keys with "-", and "_" may
// stand in for "-":
//
//	log-level: debug
//	log:
//	  format: text
//	  pretty: false
//	render:
//	  indent: 4
//
// A file that does not parse as a mapping yields an empty configuration.
// Command-line flags override configuration values.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return config{}, nil
	}

	cfg := make(config)
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over a flat map of flag names.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := c[name]; ok {
			return value, nil
		}
	}

	return nil, nil
}

// flatten stores every leaf of m under its "-"-joined key path.
func (c config) flatten(prefix string, m map[string]any) {
	for _, key := range sortedKeys(m) {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
		}

		switch v := m[key].(type) {
		case map[string]any:
			c.flatten(name, v)

		default:
			c[name] = scalar(v)
		}
	}
}

// scalar converts decoded numbers to strings, which Kong parses per flag
// type. Sequences are converted element-wise.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out

	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
