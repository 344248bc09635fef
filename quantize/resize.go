package quantize

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Downscale shrinks img so that its longest edge is at most maxSize pixels,
// keeping the aspect ratio. Smaller images and maxSize < 1 return img as is.
func Downscale(logger *slog.Logger, img image.Image, maxSize int) image.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	longest := max(srcWidth, srcHeight)
	if maxSize < 1 || longest <= float64(maxSize) {
		return img
	}

	scale := float64(maxSize) / longest
	destBounds := image.Rect(0, 0,
		max(1, int(math.Round(srcWidth*scale))),
		max(1, int(math.Round(srcHeight*scale))))

	logger.Info("downscaling", "width", destBounds.Dx(), "height", destBounds.Dy())
	dest := image.NewNRGBA(destBounds)
	draw.ApproxBiLinear.Scale(dest, destBounds, img, srcBounds, draw.Src, nil)

	return dest
}
