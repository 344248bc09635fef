// Package gen implements the command generating a base16 scheme from an image.
package gen

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"schemegen/base16"
	"schemegen/config"
	"schemegen/metric"
	"schemegen/palette"
	"schemegen/parallel"
	"schemegen/quantize"
	"schemegen/scheme"
	"schemegen/synth"
)

type CLICmd struct {
	Image    string `arg:"" help:"Image to extract the colors from" type:"existingfile"`
	Output   string `arg:"" help:"Destination scheme. Written as RIFF palette when ending in .pal, as YAML otherwise"`
	Template string `help:"Template scheme in YAML or RIFF palette format. Built-in template when empty" short:"t"`

	Depth      uint8  `help:"Significant bits per channel kept when bucketing pixels" default:"2" short:"d" group:"quantize"`
	MaxSize    int    `help:"Downscale the image so its longest side is at most this many pixels, 0 keeps the original size" default:"0" group:"quantize"`
	Similarity uint16 `help:"Minimum distance between two chromatic colors" default:"20" short:"s" group:"palette"`
	Vibrancy   uint8  `help:"Colorfulness threshold for the accent color, 1-100" default:"15" short:"v" group:"palette"`
	Likeness   uint16 `help:"Maximum distance between a picked color and its template color" default:"20" short:"l" group:"palette"`
	Metric     string `help:"Color difference metric" enum:"ciede2000,cie76,oklab" default:"ciede2000" group:"palette"`

	HueCompare    float64 `help:"Hue weight when comparing colors" default:"0.75" group:"compare"`
	ChromaCompare float64 `help:"Chroma weight when comparing colors" default:"1" group:"compare"`
	LightCompare  float64 `help:"Lightness weight when comparing colors" default:"1" group:"compare"`

	HueMix        int8 `help:"Percent of the accent hue mixed into generated colors" default:"10" group:"synthesis"`
	SaturationMix int8 `help:"Percent of the accent saturation mixed into generated colors" default:"100" group:"synthesis"`
	LightMix      int8 `help:"Percent of the accent lightness mixed into generated colors" default:"100" group:"synthesis"`

	HueTweak        int8 `help:"Hue step in percent when separating generated colors" default:"0" group:"synthesis"`
	SaturationTweak int8 `help:"Saturation step in percent when separating generated colors" default:"-1" group:"synthesis"`
	LightTweak      int8 `help:"Lightness step in percent when separating generated colors" default:"1" group:"synthesis"`

	Name    string `help:"Scheme name" group:"output"`
	Author  string `help:"Scheme author" default:"schemegen" group:"output"`
	Variant string `help:"Scheme variant, dark or light. Guessed from the background when empty" group:"output"`
	Preview bool   `help:"Print the palette as colored swatches" default:"false" group:"output"`
	Remap   string `help:"Also write the image remapped to the palette as PNG to this path" group:"output"`

	conf config.Config   `kong:"-"`
	tmpl base16.Template `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	conf, err := c.config()
	if err != nil {
		return err
	}
	if err = conf.Validate(); err != nil {
		return err
	}
	c.conf = conf

	if c.Template == "" {
		c.tmpl = scheme.Default()
	} else if c.tmpl, err = scheme.LoadFile(c.Template); err != nil {
		return err
	}

	if c.MaxSize < 0 {
		return fmt.Errorf("invalid max size: %d", c.MaxSize)
	}

	switch c.Variant {
	case "", "dark", "light":
	default:
		return fmt.Errorf("invalid variant %q, expected dark or light", c.Variant)
	}

	return nil
}

func (c *CLICmd) config() (config.Config, error) {
	distance, ok := metric.ByName(c.Metric)
	if !ok {
		return config.Config{}, fmt.Errorf("unsupported metric: %s", c.Metric)
	}

	return config.Config{
		Depth:      c.Depth,
		Similarity: c.Similarity,
		Vibrancy:   c.Vibrancy,
		Likeness:   c.Likeness,
		Compare: metric.Weights{
			Hue:    c.HueCompare,
			Chroma: c.ChromaCompare,
			Light:  c.LightCompare,
		},
		Mix: synth.Factors{
			Hue:        c.HueMix,
			Saturation: c.SaturationMix,
			Light:      c.LightMix,
		},
		Tweak: synth.Factors{
			Hue:        c.HueTweak,
			Saturation: c.SaturationTweak,
			Light:      c.LightTweak,
		},
		Metric: distance,
	}, nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	defer wait(true)

	logger := slog.Default().With("file", c.Image)

	img, err := decode(c.Image)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	logger.Debug("decoded image", "width", bounds.Dx(), "height", bounds.Dy())

	img = quantize.Downscale(logger, img, c.MaxSize)

	pool, err := quantize.Image(img, c.conf.Depth, worker)
	if err != nil {
		return fmt.Errorf("could not quantize image %q: %w", c.Image, err)
	}
	logger.Info("quantized", "candidates", len(pool), "pixels", pool.Total())

	pal, err := palette.Generate(&c.tmpl, pool, &c.conf, logger)
	if err != nil {
		return fmt.Errorf("could not generate palette for %q: %w", c.Image, err)
	}
	for i, s := range pal {
		if s.Ok {
			logger.Debug("slot", "key", base16.Key(i), "color", s.Color)
		} else {
			logger.Warn("slot left empty", "key", base16.Key(i))
		}
	}

	if err = scheme.WriteFile(c.Output, c.meta(&pal), &pal); err != nil {
		return err
	}
	slog.Info("stats", "output", c.Output, "colors", pal.Len())

	if c.Preview {
		if err = Preview(os.Stdout, &pal); err != nil {
			return fmt.Errorf("could not print preview: %w", err)
		}
	}

	if c.Remap != "" {
		remapLog := logger.With("remap", c.Remap)
		if err = remap(remapLog, img, &pal, c.Remap); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLICmd) meta(pal *base16.Palette) scheme.Meta {
	meta := scheme.Meta{
		Name:    c.Name,
		Author:  c.Author,
		Variant: c.Variant,
	}
	if meta.Name == "" {
		base := c.Image
		if i := strings.LastIndexAny(base, `/\`); i >= 0 {
			base = base[i+1:]
		}
		if i := strings.LastIndexByte(base, '.'); i > 0 {
			base = base[:i]
		}
		meta.Name = base
	}
	if meta.Variant == "" {
		meta.Variant = Variant(pal)
	}
	return meta
}

// Variant reports "light" when the background slot is lighter than the
// default foreground slot, "dark" otherwise.
func Variant(pal *base16.Palette) string {
	bg, bgOk := pal.Get(0)
	fg, fgOk := pal.Get(5)
	if bgOk && fgOk && bg.HSL().L > fg.HSL().L {
		return "light"
	}
	return "dark"
}

func decode(path string) (img image.Image, err error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if defErr := imgFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close image %q: %w", path, defErr)
		}
	}()

	img, _, err = image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return img, nil
}
