package palette

import (
	"errors"
	"fmt"

	"schemegen/candidate"
	"schemegen/colorspace"
	"schemegen/metric"
)

var ErrNoAccent = errors.New("no colorful candidate for the accent color")

// Accent removes the highest ranked colorful candidate from the pool and
// returns its color. Every entry of that color is removed so it cannot be
// assigned to another slot.
func Accent(pool *candidate.Pool, vibrancy uint8) (colorspace.RGB, error) {
	if len(*pool) == 0 {
		return colorspace.RGB{}, fmt.Errorf("empty candidate pool: %w", ErrNoAccent)
	}

	best, ok := pool.Best(func(c candidate.Candidate) bool {
		return metric.IsColorful(c.Color, vibrancy)
	})
	if !ok {
		return colorspace.RGB{}, fmt.Errorf("%d candidates below vibrancy %d: %w", len(*pool), vibrancy, ErrNoAccent)
	}

	pool.Remove(best.Color)
	return best.Color, nil
}
