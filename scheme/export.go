package scheme

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"schemegen/base16"
	"schemegen/palette"
)

// Meta describes a generated scheme.
type Meta struct {
	Name    string
	Author  string
	Variant string
}

// Export writes the palette as a base16 YAML scheme. Absent slots are left
// out, the other keys keep their slot index.
func Export(w io.Writer, meta Meta, pal *base16.Palette) error {
	colors := &yaml.Node{Kind: yaml.MappingNode}
	for i, s := range pal {
		if !s.Ok {
			continue
		}
		colors.Content = append(colors.Content, plain(base16.Key(i)), quoted(s.Color.String()))
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			plain("system"), quoted("base16"),
			plain("name"), quoted(meta.Name),
			plain("author"), quoted(meta.Author),
			plain("variant"), quoted(meta.Variant),
			plain("palette"), colors,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("could not encode scheme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not flush scheme: %w", err)
	}
	return nil
}

// WriteFile saves the palette to path, as a RIFF PAL file for .pal paths and
// as a YAML scheme otherwise. The file is written next to its destination and
// renamed into place once complete.
func WriteFile(path string, meta Meta, pal *base16.Palette) error {
	destName := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(path), ".pal") {
		return WriteAtomic(path, func(w io.Writer) error {
			if _, err := palette.WriteTo(w, []color.Palette{palette.Colors(pal)}); err != nil {
				return fmt.Errorf("could not encode PAL destination %q: %w", destName, err)
			}
			return nil
		})
	}

	return WriteAtomic(path, func(w io.Writer) error {
		if err := Export(w, meta, pal); err != nil {
			return fmt.Errorf("could not encode YAML destination %q: %w", destName, err)
		}
		return nil
	})
}

func plain(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}
