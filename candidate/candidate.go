// Package candidate holds the weighted colors extracted from an image and the
// per-slot queues built from them.
package candidate

import (
	"cmp"
	"slices"

	"schemegen/colorspace"
)

// Candidate is a representative image color and the number of pixels it
// stands for.
type Candidate struct {
	Color colorspace.RGB
	Count uint64
}

// Compare ranks candidates: higher counts first, then colors in ascending
// R, G, B order. The order is total, so every run ranks the same pool the same
// way.
func (c Candidate) Compare(o Candidate) int {
	if n := cmp.Compare(o.Count, c.Count); n != 0 {
		return n
	}
	if n := cmp.Compare(c.Color.R, o.Color.R); n != 0 {
		return n
	}
	if n := cmp.Compare(c.Color.G, o.Color.G); n != 0 {
		return n
	}
	return cmp.Compare(c.Color.B, o.Color.B)
}

// Pool is the weighted candidate multiset of one run.
type Pool []Candidate

// Sort ranks the pool in place.
func (p Pool) Sort() {
	slices.SortFunc(p, Candidate.Compare)
}

// Best returns the highest ranked candidate accepted by keep.
func (p Pool) Best(keep func(Candidate) bool) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)
	for _, c := range p {
		if keep(c) && (!found || c.Compare(best) < 0) {
			best, found = c, true
		}
	}
	return best, found
}

// Remove drops every entry of color c and reports how many were removed.
func (p *Pool) Remove(c colorspace.RGB) int {
	n := len(*p)
	*p = slices.DeleteFunc(*p, func(x Candidate) bool {
		return x.Color == c
	})
	return n - len(*p)
}

func (p Pool) Clone() Pool {
	return slices.Clone(p)
}

// Total sums the counts of all candidates.
func (p Pool) Total() uint64 {
	var n uint64
	for _, c := range p {
		n += c.Count
	}
	return n
}
