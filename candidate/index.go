package candidate

import (
	"schemegen/base16"
	"schemegen/config"
	"schemegen/metric"
)

// Index holds, for every template slot, the candidates acceptable for it.
type Index [base16.Slots]*Queue

// MapColors builds the index: a candidate qualifies for a slot when its
// distance to the slot's template color is within the likeness threshold.
// Chromatic slots also require the candidate to be colorful.
func MapColors(tmpl *base16.Template, pool Pool, conf *config.Config) *Index {
	var idx Index
	for i, ref := range tmpl {
		var accepted []Candidate
		for _, c := range pool {
			if conf.Distance(ref, c.Color) > conf.Likeness {
				continue
			}
			if base16.IsChromatic(i) && !metric.IsColorful(c.Color, conf.Vibrancy) {
				continue
			}
			accepted = append(accepted, c)
		}
		idx[i] = NewQueue(accepted...)
	}
	return &idx
}

// Sizes returns the number of candidates left in every queue.
func (idx *Index) Sizes() [base16.Slots]int {
	var res [base16.Slots]int
	for i, q := range idx {
		if q != nil {
			res[i] = q.Len()
		}
	}
	return res
}
