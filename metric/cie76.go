package metric

import (
	"github.com/lucasb-eyer/go-colorful"

	"schemegen/colorspace"
)

// Euclidean is the CIE76 delta E: the straight-line distance in L*a*b*. It
// ignores the weights and is only used when explicitly selected.
func Euclidean(c1, c2 colorspace.RGB, _ Weights) uint16 {
	// go-colorful scales L to 0..1
	return saturate(100 * toColorful(c1).DistanceLab(toColorful(c2)))
}

func toColorful(c colorspace.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ByName resolves a metric selected on the command line.
func ByName(name string) (Func, bool) {
	switch name {
	case "", "ciede2000":
		return Compare, true
	case "cie76":
		return Euclidean, true
	case "oklab":
		return OKLab, true
	}
	return nil, false
}
