package metric

import (
	"math"

	"schemegen/colorspace"
)

// OKLab is the weighted straight-line distance in Oklab, scaled so black and
// white are 100 apart. The hue term is what remains of the a/b difference once
// the chroma difference is taken out.
func OKLab(c1, c2 colorspace.RGB, w Weights) uint16 {
	return saturate(100 * DeltaOKLab(c1.OKLab(), c2.OKLab(), w))
}

func DeltaOKLab(lab1, lab2 colorspace.OKLab, w Weights) float64 {
	dL := lab1.L - lab2.L
	dA := lab1.A - lab2.A
	dB := lab1.B - lab2.B
	dC := lab1.Chroma() - lab2.Chroma()
	dH2 := max(0, dA*dA+dB*dB-dC*dC)

	lTerm := dL / w.Light
	cTerm := dC / w.Chroma

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + dH2/(w.Hue*w.Hue))
}
