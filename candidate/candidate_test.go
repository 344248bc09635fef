package candidate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"schemegen/base16"
	"schemegen/colorspace"
	"schemegen/config"
)

func rgb(r, g, b uint8) colorspace.RGB {
	return colorspace.RGB{R: r, G: g, B: b}
}

func TestCompareOrder(t *testing.T) {
	pool := Pool{
		{rgb(9, 9, 9), 5},
		{rgb(1, 2, 3), 10},
		{rgb(1, 2, 2), 10},
		{rgb(0, 200, 0), 10},
		{rgb(7, 7, 7), 100},
	}
	pool.Sort()

	want := Pool{
		{rgb(7, 7, 7), 100},
		{rgb(0, 200, 0), 10},
		{rgb(1, 2, 2), 10},
		{rgb(1, 2, 3), 10},
		{rgb(9, 9, 9), 5},
	}
	if d := cmp.Diff(want, pool); d != "" {
		t.Errorf("sorted pool mismatch (-want +got):\n%s", d)
	}
}

func TestQueue(t *testing.T) {
	in := []Candidate{
		{rgb(3, 0, 0), 1},
		{rgb(2, 0, 0), 7},
		{rgb(1, 0, 0), 7},
		{rgb(0, 0, 0), 3},
	}
	q := NewQueue(in...)

	snapshot := q.All()
	if q.Len() != len(in) {
		t.Fatalf("All() modified the queue: %d items left", q.Len())
	}

	want := []Candidate{
		{rgb(1, 0, 0), 7},
		{rgb(2, 0, 0), 7},
		{rgb(0, 0, 0), 3},
		{rgb(3, 0, 0), 1},
	}
	if d := cmp.Diff(want, snapshot); d != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", d)
	}

	var popped []Candidate
	for {
		c, ok := q.Pop()
		if !ok {
			break
		}
		popped = append(popped, c)
	}
	if d := cmp.Diff(want, popped); d != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", d)
	}

	var empty Queue
	if _, ok := empty.Pop(); ok {
		t.Error("Pop() on empty queue succeeded")
	}
}

func TestPoolRemoveAndBest(t *testing.T) {
	pool := Pool{
		{rgb(1, 1, 1), 50},
		{rgb(200, 10, 10), 40},
		{rgb(1, 1, 1), 5},
		{rgb(10, 200, 10), 40},
	}

	best, ok := pool.Best(func(c Candidate) bool { return c.Color.R > 100 || c.Color.G > 100 })
	if !ok || best.Color != rgb(10, 200, 10) {
		t.Errorf("Best() = %v, %t", best, ok)
	}

	if n := pool.Remove(rgb(1, 1, 1)); n != 2 {
		t.Errorf("Remove() removed %d entries, want 2", n)
	}
	if pool.Total() != 80 {
		t.Errorf("Total() = %d, want 80", pool.Total())
	}

	if _, ok := pool.Best(func(Candidate) bool { return false }); ok {
		t.Error("Best() found a candidate nothing accepts")
	}
}

func TestMapColors(t *testing.T) {
	var tmpl base16.Template
	for i := range tmpl {
		tmpl[i] = rgb(uint8(i*16), uint8(i*16), uint8(i*16))
	}
	tmpl[8] = rgb(225, 93, 103)
	tmpl[11] = rgb(93, 177, 41)

	pool := Pool{
		{rgb(20, 20, 20), 100},   // dark gray
		{rgb(220, 90, 100), 50},  // close to slot 8
		{rgb(88, 120, 125), 10},  // dull teal, close to nothing chromatic
		{rgb(120, 120, 120), 30}, // mid gray
		{rgb(90, 180, 45), 20},   // close to slot 11
		{rgb(224, 100, 110), 5},  // close to slot 8
	}

	conf := config.Default()
	idx := MapColors(&tmpl, pool, &conf)

	slot8 := idx[8].All()
	want8 := []Candidate{{rgb(220, 90, 100), 50}, {rgb(224, 100, 110), 5}}
	if d := cmp.Diff(want8, slot8); d != "" {
		t.Errorf("slot 8 mismatch (-want +got):\n%s", d)
	}

	slot11 := idx[11].All()
	if len(slot11) != 1 || slot11[0].Color != rgb(90, 180, 45) {
		t.Errorf("slot 11 = %v", slot11)
	}

	// the gray template at slot 1 (16,16,16) accepts the dark gray
	found := false
	for _, c := range idx[1].All() {
		if c.Color == rgb(20, 20, 20) {
			found = true
		}
	}
	if !found {
		t.Error("slot 1 does not contain the dark gray")
	}

	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		for _, c := range idx[i].All() {
			if c.Color == rgb(120, 120, 120) || c.Color == rgb(20, 20, 20) {
				t.Errorf("gray %v accepted in chromatic slot %d", c.Color, i)
			}
		}
	}

	sizes := idx.Sizes()
	if sizes[8] != 2 {
		t.Errorf("Sizes()[8] = %d", sizes[8])
	}
}
