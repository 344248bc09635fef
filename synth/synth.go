// Package synth manufactures colors when no image color fits a slot.
package synth

import "schemegen/colorspace"

// Factors are per-channel percentages in [-100,100] applied in HSL space.
type Factors struct {
	Hue        int8
	Saturation int8
	Light      int8
}

// Mix moves every HSL channel of main towards ref by the given percentage of
// their signed difference. Negative factors move away from ref.
func Mix(main, ref colorspace.RGB, f Factors) colorspace.RGB {
	m := main.HSL()
	r := ref.HSL()

	return colorspace.HSL{
		H: m.H + (r.H-m.H)*percent(f.Hue),
		S: m.S + (r.S-m.S)*percent(f.Saturation),
		L: m.L + (r.L-m.L)*percent(f.Light),
	}.Clamp().RGB()
}

// Tweak scales every HSL channel of c by the given percentage of its own value.
func Tweak(c colorspace.RGB, f Factors) colorspace.RGB {
	hsl := c.HSL()

	return colorspace.HSL{
		H: hsl.H + hsl.H*percent(f.Hue),
		S: hsl.S + hsl.S*percent(f.Saturation),
		L: hsl.L + hsl.L*percent(f.Light),
	}.Clamp().RGB()
}

func percent(f int8) float64 {
	return float64(f) / 100
}
