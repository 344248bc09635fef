// Package config holds the immutable parameters of a palette generation run.
package config

import (
	"errors"
	"fmt"

	"schemegen/colorspace"
	"schemegen/metric"
	"schemegen/synth"
)

type Config struct {
	// Depth is the number of most significant bits per channel kept when
	// bucketing pixels.
	Depth uint8
	// Similarity is the minimum distance between two chromatic colors.
	Similarity uint16
	// Vibrancy is the colorfulness threshold, 1-100.
	Vibrancy uint8
	// Likeness is the maximum distance between a candidate and a template color.
	Likeness uint16

	Compare metric.Weights
	Mix     synth.Factors
	Tweak   synth.Factors

	// Metric defaults to weighted CIEDE2000 when nil.
	Metric metric.Func
}

// Default returns the parameters the generator uses when nothing is given.
func Default() Config {
	return Config{
		Depth:      2,
		Similarity: 20,
		Vibrancy:   15,
		Likeness:   20,
		Compare:    metric.Weights{Hue: 0.75, Chroma: 1, Light: 1},
		Mix:        synth.Factors{Hue: 10, Saturation: 100, Light: 100},
		Tweak:      synth.Factors{Hue: 0, Saturation: -1, Light: 1},
		Metric:     metric.Compare,
	}
}

// Distance compares two colors with the configured metric and weights.
func (c *Config) Distance(c1, c2 colorspace.RGB) uint16 {
	return c.DistanceWeighted(c1, c2, c.Compare)
}

// DistanceWeighted compares two colors with the configured metric and the
// given weights.
func (c *Config) DistanceWeighted(c1, c2 colorspace.RGB, w metric.Weights) uint16 {
	if c.Metric == nil {
		return metric.Compare(c1, c2, w)
	}
	return c.Metric(c1, c2, w)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Depth < 1 || c.Depth > 8 {
		errs = append(errs, fmt.Errorf("invalid depth %d, expected 1-8", c.Depth))
	}
	if c.Vibrancy < 1 || c.Vibrancy > 100 {
		errs = append(errs, fmt.Errorf("invalid vibrancy %d, expected 1-100", c.Vibrancy))
	}

	for _, w := range []struct {
		name string
		v    float64
	}{
		{"hue-compare", c.Compare.Hue},
		{"chroma-compare", c.Compare.Chroma},
		{"light-compare", c.Compare.Light},
	} {
		if !(w.v > 0) {
			errs = append(errs, fmt.Errorf("invalid %s %g, expected a value > 0", w.name, w.v))
		}
	}

	for _, f := range []struct {
		name string
		v    int8
	}{
		{"hue-mix", c.Mix.Hue},
		{"saturation-mix", c.Mix.Saturation},
		{"light-mix", c.Mix.Light},
		{"hue-tweak", c.Tweak.Hue},
		{"saturation-tweak", c.Tweak.Saturation},
		{"light-tweak", c.Tweak.Light},
	} {
		if f.v < -100 || f.v > 100 {
			errs = append(errs, fmt.Errorf("invalid %s %d, expected -100-100", f.name, f.v))
		}
	}

	return errors.Join(errs...)
}
