package colorspace

import "math"

// HSL holds hue, saturation and lightness, each in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	cMax := max(r, g, b)
	cMin := min(r, g, b)
	delta := cMax - cMin

	hsl := HSL{L: (cMax + cMin) / 2}
	if delta == 0 {
		return hsl
	}

	if hsl.L < 0.5 {
		hsl.S = delta / (cMax + cMin)
	} else {
		hsl.S = delta / (2 - cMax - cMin)
	}

	dR := ((cMax-r)/6 + delta/2) / delta
	dG := ((cMax-g)/6 + delta/2) / delta
	dB := ((cMax-b)/6 + delta/2) / delta

	switch cMax {
	case r:
		hsl.H = dB - dG
	case g:
		hsl.H = 1.0/3 + dR - dB
	default:
		hsl.H = 2.0/3 + dG - dR
	}

	if hsl.H < 0 {
		hsl.H++
	}
	if hsl.H > 1 {
		hsl.H--
	}

	return hsl
}

func (c HSL) RGB() RGB {
	if c.S == 0 {
		v := to8bit(c.L)
		return RGB{R: v, G: v, B: v}
	}

	var v2 float64
	if c.L < 0.5 {
		v2 = c.L * (1 + c.S)
	} else {
		v2 = (c.L + c.S) - c.S*c.L
	}
	v1 := 2*c.L - v2

	return RGB{
		R: to8bit(hueToChannel(v1, v2, c.H+1.0/3)),
		G: to8bit(hueToChannel(v1, v2, c.H)),
		B: to8bit(hueToChannel(v1, v2, c.H-1.0/3)),
	}
}

// Clamp limits every component to [0,1].
func (c HSL) Clamp() HSL {
	return HSL{
		H: clamp(c.H, 0, 1),
		S: clamp(c.S, 0, 1),
		L: clamp(c.L, 0, 1),
	}
}

func hueToChannel(v1, v2, vH float64) float64 {
	if vH < 0 {
		vH++
	}
	if vH > 1 {
		vH--
	}

	switch {
	case 6*vH < 1:
		return v1 + (v2-v1)*6*vH
	case 2*vH < 1:
		return v2
	case 3*vH < 2:
		return v1 + (v2-v1)*(2.0/3-vH)*6
	}
	return v1
}

func to8bit(x float64) uint8 {
	return uint8(clamp(math.Round(x*255), 0, 255))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
