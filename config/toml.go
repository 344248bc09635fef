package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// TOMLResolver loads flag values from a TOML document. Keys are flag names,
// either at the top level or in a table named after the command:
//
//	similarity = 25
//
//	[gen]
//	hue-compare = 0.8
func TOMLResolver(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("could not parse TOML configuration: %w", err)
	}

	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if table, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookupFlag(table, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookupFlag(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}), nil
}

func lookupFlag(values map[string]any, name string) (any, bool) {
	v, ok := values[name]
	if !ok {
		v, ok = values[strings.ReplaceAll(name, "-", "_")]
	}
	if !ok {
		return nil, false
	}

	switch v.(type) {
	case map[string]any, []any, []map[string]any:
		return nil, false
	case string:
		return v, true
	}
	return fmt.Sprint(v), true
}
