// based on:
// http://www.easyrgb.com/en/math.php
// https://en.wikipedia.org/wiki/CIELAB_color_space

package colorspace

import "math"

// Lab is a CIE L*a*b* color relative to the D65 white point.
type Lab struct {
	L float64 // lightness, 0..100
	A float64 // green/red
	B float64 // blue/yellow
}

// D65 reference white, 2° observer.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

func (c RGB) Lab() Lab {
	r := toLinear(float64(c.R)/255) * 100
	g := toLinear(float64(c.G)/255) * 100
	b := toLinear(float64(c.B)/255) * 100

	x := labF((r*0.4124 + g*0.3576 + b*0.1805) / whiteX)
	y := labF((r*0.2126 + g*0.7152 + b*0.0722) / whiteY)
	z := labF((r*0.0193 + g*0.1192 + b*0.9505) / whiteZ)

	return Lab{
		L: 116*y - 16,
		A: 500 * (x - y),
		B: 200 * (y - z),
	}
}

// Chroma is the distance from the neutral axis.
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

func toLinear(x float64) float64 {
	if x > 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116
}
