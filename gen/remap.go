package gen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/image/draw"

	"schemegen/base16"
	"schemegen/scheme"
)

// remapImage converts img to a paletted image using the populated slots, with
// Floyd-Steinberg error diffusion.
func remapImage(img image.Image, pal *base16.Palette) (*image.Paletted, error) {
	var colors color.Palette
	for _, s := range pal {
		if s.Ok {
			colors = append(colors, s.Color)
		}
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to remap to")
	}

	srcBounds := img.Bounds()
	destBounds := image.Rect(0, 0, srcBounds.Dx(), srcBounds.Dy())
	dest := image.NewPaletted(destBounds, colors)
	draw.FloydSteinberg.Draw(dest, destBounds, img, srcBounds.Min)

	return dest, nil
}

func remap(logger *slog.Logger, img image.Image, pal *base16.Palette, destPath string) error {
	dest, err := remapImage(img, pal)
	if err != nil {
		return fmt.Errorf("could not remap image: %w", err)
	}

	if err = savePNG(dest, destPath); err != nil {
		return err
	}
	logger.Info("remapped", "colors", len(dest.Palette))
	return nil
}

func savePNG(img image.Image, destPath string) error {
	return scheme.WriteAtomic(destPath, func(w io.Writer) error {
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", filepath.Base(destPath), err)
		}
		return nil
	})
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
