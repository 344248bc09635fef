// Package base16 describes the fixed 16-slot layout shared by templates and
// generated palettes.
package base16

import (
	"fmt"

	"schemegen/colorspace"
)

const (
	// Slots is the number of colors in a scheme.
	Slots = 16
	// FirstChromatic is the first slot after the grayscale ramp.
	FirstChromatic = 8
	// Accent is the slot reserved for the most prominent colorful color.
	Accent = 13
)

// Template holds the reference colors: slots 0-7 are a grayscale ramp from
// darkest to lightest, slots 8-15 are chromatic.
type Template [Slots]colorspace.RGB

// IsChromatic reports whether slot i belongs to the chromatic half.
func IsChromatic(i int) bool {
	return i >= FirstChromatic && i < Slots
}

// Key returns the scheme key of slot i, e.g. "base0D".
func Key(i int) string {
	return fmt.Sprintf("base%02X", i)
}

// Slot is an optional palette entry.
type Slot struct {
	Color colorspace.RGB
	Ok    bool
}

// Palette is a generated scheme. Absent slots have Ok unset.
type Palette [Slots]Slot

func (p *Palette) Set(i int, c colorspace.RGB) {
	p[i] = Slot{Color: c, Ok: true}
}

func (p *Palette) Clear(i int) {
	p[i] = Slot{}
}

func (p *Palette) Get(i int) (colorspace.RGB, bool) {
	return p[i].Color, p[i].Ok
}

// Len counts the populated slots.
func (p *Palette) Len() int {
	n := 0
	for _, s := range p {
		if s.Ok {
			n++
		}
	}
	return n
}
