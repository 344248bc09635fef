// Package scheme reads template schemes and writes generated ones.
package scheme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"schemegen/base16"
	"schemegen/colorspace"
	"schemegen/palette"
)

var ErrTemplateSize = errors.New("template is not a base16 palette")

// Default returns the built-in template.
func Default() base16.Template {
	return base16.Template{
		{R: 34, G: 34, B: 34},
		{R: 48, G: 48, B: 48},
		{R: 85, G: 85, B: 85},
		{R: 137, G: 137, B: 137},
		{R: 192, G: 192, B: 192},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 255, B: 255},
		{R: 176, G: 176, B: 176},
		{R: 225, G: 93, B: 103},
		{R: 252, G: 128, B: 78},
		{R: 242, G: 196, B: 43},
		{R: 93, G: 177, B: 41},
		{R: 33, G: 201, B: 146},
		{R: 0, G: 163, B: 242},
		{R: 180, G: 110, B: 224},
		{R: 184, G: 125, B: 40},
	}
}

// LoadFile reads a template from a RIFF PAL file (.pal) or a YAML scheme.
func LoadFile(path string) (tmpl base16.Template, err error) {
	f, err := os.Open(path)
	if err != nil {
		return base16.Template{}, fmt.Errorf("could not open template %q: %w", path, err)
	}
	defer func() {
		if defErr := f.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close template %q: %w", path, defErr)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".pal") {
		tmpl, err = LoadPAL(f)
	} else {
		tmpl, err = Load(f)
	}
	if err != nil {
		return tmpl, fmt.Errorf("could not load template %q: %w", path, err)
	}
	return tmpl, nil
}

// Load reads a YAML scheme. Colors are taken in document order from the
// "palette" mapping, or from the top level "baseXX" keys of older schemes.
func Load(r io.Reader) (base16.Template, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return base16.Template{}, fmt.Errorf("could not parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return base16.Template{}, fmt.Errorf("scheme is not a mapping")
	}

	root := doc.Content[0]
	entries := root
	if pal := lookup(root, "palette"); pal != nil {
		if pal.Kind != yaml.MappingNode {
			return base16.Template{}, fmt.Errorf("palette is not a mapping (line %d)", pal.Line)
		}
		entries = pal
	}

	var colors []colorspace.RGB
	for i := 0; i+1 < len(entries.Content); i += 2 {
		k, v := entries.Content[i], entries.Content[i+1]
		if entries == root && !strings.HasPrefix(k.Value, "base") {
			continue
		}

		c, err := ParseHex(v.Value)
		if err != nil {
			return base16.Template{}, fmt.Errorf("invalid color %q for %s (line %d): %w", v.Value, k.Value, v.Line, err)
		}
		colors = append(colors, c)
	}

	return toTemplate(colors)
}

// LoadPAL reads the first palette of a RIFF PAL stream.
func LoadPAL(r io.Reader) (base16.Template, error) {
	pals, err := palette.ReadFrom(r)
	if err != nil {
		return base16.Template{}, err
	}
	if len(pals) == 0 {
		return base16.Template{}, fmt.Errorf("no palette found: %w", ErrTemplateSize)
	}

	colors := make([]colorspace.RGB, len(pals[0]))
	for i, c := range pals[0] {
		colors[i] = colorspace.RGBModel.Convert(c).(colorspace.RGB)
	}
	return toTemplate(colors)
}

// ParseHex parses #RRGGBB, RRGGBB or #RGB.
func ParseHex(s string) (colorspace.RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return colorspace.RGB{}, err
	}
	r, g, b := c.RGB255()
	return colorspace.RGB{R: r, G: g, B: b}, nil
}

func toTemplate(colors []colorspace.RGB) (base16.Template, error) {
	var tmpl base16.Template
	if len(colors) != base16.Slots {
		return tmpl, fmt.Errorf("expected %d colors, got %d: %w", base16.Slots, len(colors), ErrTemplateSize)
	}
	copy(tmpl[:], colors)
	return tmpl, nil
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
