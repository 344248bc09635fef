// based on:
// https://bottosson.github.io/posts/oklab/

package colorspace

import "math"

// OKLab is a color in Björn Ottosson's perceptual Oklab space.
type OKLab struct {
	L float64 // perceived lightness, 0..1
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

func (c RGB) OKLab() OKLab {
	r := toLinear(float64(c.R) / 255)
	g := toLinear(float64(c.G) / 255)
	b := toLinear(float64(c.B) / 255)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return OKLab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

func (c OKLab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}
