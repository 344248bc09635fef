package colorspace

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit sRGB color. It is the only persisted color
// representation, HSL and Lab are derived from it on demand.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var RGBModel = color.ModelFunc(rgbConvert)

func rgbConvert(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: nc.R, G: nc.G, B: nc.B}
}

func (c RGB) RGBA() (uint32, uint32, uint32, uint32) {
	r := uint32(c.R)
	g := uint32(c.G)
	b := uint32(c.B)
	return r | r<<8, g | g<<8, b | b<<8, 0xFFFF
}

// String formats the color as #RRGGBB with uppercase hex digits.
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
