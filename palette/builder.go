package palette

import (
	"log/slog"
	"math"

	"schemegen/base16"
	"schemegen/candidate"
	"schemegen/colorspace"
	"schemegen/config"
	"schemegen/metric"
	"schemegen/synth"
)

// grayWeights ignore most of the hue and stress lightness, grayscale slots
// are matched on brightness.
var grayWeights = metric.Weights{Hue: 4, Chroma: 1, Light: 0.5}

const (
	maxResolveSteps = 1 << 16
	maxTweakSteps   = math.MaxUint16
)

// Builder assigns candidates to the slots of a template. A Builder owns the
// index it is given for the duration of Create.
type Builder struct {
	Template *base16.Template
	Config   *config.Config
	Logger   *slog.Logger
}

// Generate runs the whole pipeline over pool: accent extraction, index
// construction and palette creation. Generate takes ownership of pool.
func Generate(tmpl *base16.Template, pool candidate.Pool, conf *config.Config, logger *slog.Logger) (base16.Palette, error) {
	accent, err := Accent(&pool, conf.Vibrancy)
	if err != nil {
		return base16.Palette{}, err
	}

	idx := candidate.MapColors(tmpl, pool, conf)

	b := &Builder{Template: tmpl, Config: conf, Logger: logger}
	b.logger().Debug("mapped candidates", "accent", accent, "queues", idx.Sizes())
	return b.Create(idx, accent), nil
}

// Create fills the palette. Chromatic slots are always populated on return,
// grayscale slots without candidates stay absent.
func (b *Builder) Create(idx *candidate.Index, accent colorspace.RGB) base16.Palette {
	logger := b.logger()

	pal := b.assignGrayscale(idx)
	pal.Set(base16.Accent, accent)

	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		if i == base16.Accent {
			continue
		}
		if c, ok := idx[i].Pop(); ok {
			pal.Set(i, c.Color)
		}
	}

	b.resolveConflicts(idx, &pal)

	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		if _, ok := pal.Get(i); ok {
			continue
		}
		c := b.genColor(&pal, i, accent)
		logger.Debug("synthesized color", "slot", base16.Key(i), "color", c)
		pal.Set(i, c)
	}

	return pal
}

// assignGrayscale picks, for every grayscale slot, the queued candidate
// closest to the template color. The queues are left untouched.
func (b *Builder) assignGrayscale(idx *candidate.Index) base16.Palette {
	var pal base16.Palette
	for i := range base16.FirstChromatic {
		ref := b.Template[i]
		bestDist := uint16(math.MaxUint16)
		for _, c := range idx[i].All() {
			d := b.Config.DistanceWeighted(c.Color, ref, grayWeights)
			if _, ok := pal.Get(i); !ok || d < bestDist {
				pal.Set(i, c.Color)
				bestDist = d
			}
		}
	}
	return pal
}

// resolveConflicts replaces chromatic colors closer to each other than the
// similarity threshold until no such pair is left.
//
// Slots whose color changed are kept on a FIFO worklist and rechecked against
// every other chromatic slot. Of a conflicting pair, the color farther from
// its own template color is replaced by the next candidate of its slot, or
// dropped when the slot has none left; the accent is never replaced. Every
// replacement consumes a candidate, so the loop ends, maxResolveSteps only
// guards against mistakes.
func (b *Builder) resolveConflicts(idx *candidate.Index, pal *base16.Palette) {
	logger := b.logger()

	var (
		dirty  []int
		queued [base16.Slots]bool
	)
	mark := func(i int) {
		if !queued[i] {
			queued[i] = true
			dirty = append(dirty, i)
		}
	}
	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		if i != base16.Accent {
			mark(i)
		}
	}

	for step := 0; len(dirty) > 0; step++ {
		if step == maxResolveSteps {
			logger.Warn("conflict resolution did not settle", "steps", step, "dirty", len(dirty))
			return
		}

		i := dirty[0]
		dirty = dirty[1:]
		queued[i] = false

		ci, ok := pal.Get(i)
		if !ok {
			continue
		}

		for j := base16.FirstChromatic; j < base16.Slots; j++ {
			if j == i {
				continue
			}
			cj, ok := pal.Get(j)
			if !ok || b.Config.Distance(ci, cj) >= b.Config.Similarity {
				continue
			}

			loser := j
			if j == base16.Accent ||
				b.Config.Distance(ci, b.Template[i]) > b.Config.Distance(cj, b.Template[j]) {
				loser = i
			}

			b.replace(idx, pal, loser)
			mark(loser)
			if loser == i {
				break
			}
		}
	}
}

func (b *Builder) replace(idx *candidate.Index, pal *base16.Palette, i int) {
	old, _ := pal.Get(i)
	if c, ok := idx[i].Pop(); ok {
		b.logger().Debug("replacing similar color", "slot", base16.Key(i), "old", old, "new", c.Color)
		pal.Set(i, c.Color)
		return
	}

	b.logger().Debug("dropping similar color", "slot", base16.Key(i), "old", old)
	pal.Clear(i)
}

// genColor synthesizes a color for slot i by mixing its template color with
// the accent. When the result is too close to a placed color it is tweaked
// repeatedly and the most separated variant is kept, even if it never clears
// the similarity threshold.
func (b *Builder) genColor(pal *base16.Palette, i int, accent colorspace.RGB) colorspace.RGB {
	cur := synth.Mix(b.Template[i], accent, b.Config.Mix)
	best, bestDist := cur, b.separation(pal, i, cur)

	for range maxTweakSteps {
		if bestDist >= b.Config.Similarity {
			break
		}

		next := synth.Tweak(cur, b.Config.Tweak)
		if next == cur {
			break
		}
		cur = next

		if d := b.separation(pal, i, cur); d > bestDist {
			best, bestDist = cur, d
		}
	}

	return best
}

// separation is the distance from c to the nearest placed chromatic color
// other than slot i.
func (b *Builder) separation(pal *base16.Palette, i int, c colorspace.RGB) uint16 {
	res := uint16(math.MaxUint16)
	for j := base16.FirstChromatic; j < base16.Slots; j++ {
		if j == i {
			continue
		}
		if cj, ok := pal.Get(j); ok {
			res = min(res, b.Config.Distance(c, cj))
		}
	}
	return res
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}
