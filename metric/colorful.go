package metric

import (
	"math"

	"schemegen/colorspace"
)

// IsColorful reports whether c is chromatic rather than a shade of gray.
//
// threshold (0-100) is the minimum HSL saturation at lightness 0.5. Towards
// black and white the required saturation rises along a parabola and reaches
// full saturation at 0.5 ± w, where the half-width w = 0.5*(1-0.8*t) shrinks as
// the threshold grows.
func IsColorful(c colorspace.RGB, threshold uint8) bool {
	hsl := c.HSL()
	t := float64(min(threshold, 100)) / 100

	w := 0.5 * (1 - 0.8*t)
	if math.Abs(hsl.L-0.5) > w {
		return false
	}
	d := (hsl.L - 0.5) / w
	return hsl.S >= t+(1-t)*d*d
}
