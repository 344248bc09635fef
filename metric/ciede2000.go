// based on:
// https://en.wikipedia.org/wiki/Color_difference#CIEDE2000
// http://www2.ece.rochester.edu/~gsharma/ciede2000/ciede2000noteCRNA.pdf

package metric

import (
	"math"

	"schemegen/colorspace"
)

// Weights are the CIEDE2000 parametric factors kH, kC and kL. A larger weight
// makes the matching component contribute less to the distance.
type Weights struct {
	Hue    float64
	Chroma float64
	Light  float64
}

// Unweighted is the reference CIEDE2000 configuration.
var Unweighted = Weights{Hue: 1, Chroma: 1, Light: 1}

// Func measures the perceptual distance between two colors.
type Func func(c1, c2 colorspace.RGB, w Weights) uint16

const pow25_7 = 6103515625.0 // 25^7

// Compare returns the weighted CIEDE2000 delta E between c1 and c2, rounded to
// the nearest integer and saturated to the uint16 range.
func Compare(c1, c2 colorspace.RGB, w Weights) uint16 {
	return saturate(DeltaE2000(c1.Lab(), c2.Lab(), w))
}

func DeltaE2000(lab1, lab2 colorspace.Lab, w Weights) float64 {
	cBar := (lab1.Chroma() + lab2.Chroma()) / 2
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25_7)))

	a1 := lab1.A * (1 + g)
	a2 := lab2.A * (1 + g)
	c1 := math.Hypot(a1, lab1.B)
	c2 := math.Hypot(a2, lab2.B)
	h1 := hueAngle(a1, lab1.B)
	h2 := hueAngle(a2, lab2.B)

	dL := lab2.L - lab1.L
	dC := c2 - c1

	var dh float64
	if c1*c2 != 0 {
		dh = h2 - h1
		if dh > math.Pi {
			dh -= 2 * math.Pi
		} else if dh < -math.Pi {
			dh += 2 * math.Pi
		}
	}
	dH := 2 * math.Sqrt(c1*c2) * math.Sin(dh/2)

	lBar := (lab1.L + lab2.L) / 2
	cBarP := (c1 + c2) / 2

	hBar := h1 + h2
	if c1*c2 != 0 {
		if math.Abs(h1-h2) <= math.Pi {
			hBar /= 2
		} else if hBar < 2*math.Pi {
			hBar = (hBar + 2*math.Pi) / 2
		} else {
			hBar = (hBar - 2*math.Pi) / 2
		}
	}

	t := 1 -
		0.17*math.Cos(hBar-math.Pi/6) +
		0.24*math.Cos(2*hBar) +
		0.32*math.Cos(3*hBar+math.Pi/30) -
		0.20*math.Cos(4*hBar-63*math.Pi/180)

	l50 := (lBar - 50) * (lBar - 50)
	sL := 1 + 0.015*l50/math.Sqrt(20+l50)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t

	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25_7))
	hDeg := hBar * 180 / math.Pi
	dTheta := 30 * math.Exp(-((hDeg-275)/25)*((hDeg-275)/25))
	rT := -rC * math.Sin(2*dTheta*math.Pi/180)

	lTerm := dL / (w.Light * sL)
	cTerm := dC / (w.Chroma * sC)
	hTerm := dH / (w.Hue * sH)

	return math.Sqrt(max(0, lTerm*lTerm+cTerm*cTerm+hTerm*hTerm+rT*cTerm*hTerm))
}

// hueAngle returns atan2(b, a) in [0, 2π).
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func saturate(d float64) uint16 {
	d = math.Round(d)
	switch {
	case math.IsNaN(d) || d <= 0:
		return 0
	case d >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(d)
}
