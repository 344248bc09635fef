package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"schemegen/base16"
	"schemegen/candidate"
	"schemegen/colorspace"
	"schemegen/config"
	"schemegen/synth"
)

func rgb(r, g, b uint8) colorspace.RGB {
	return colorspace.RGB{R: r, G: g, B: b}
}

var testTemplate = base16.Template{
	rgb(34, 34, 34), rgb(48, 48, 48), rgb(85, 85, 85), rgb(137, 137, 137),
	rgb(192, 192, 192), rgb(255, 255, 255), rgb(255, 255, 255), rgb(176, 176, 176),
	rgb(225, 93, 103), rgb(252, 128, 78), rgb(242, 196, 43), rgb(93, 177, 41),
	rgb(33, 201, 146), rgb(0, 163, 242), rgb(180, 110, 224), rgb(184, 125, 40),
}

func testPool() candidate.Pool {
	return candidate.Pool{
		{Color: rgb(20, 20, 20), Count: 1000},
		{Color: rgb(230, 230, 230), Count: 900},
		{Color: rgb(220, 50, 50), Count: 500},
		{Color: rgb(60, 180, 75), Count: 450},
		{Color: rgb(250, 130, 80), Count: 400},
		{Color: rgb(240, 200, 50), Count: 380},
		{Color: rgb(40, 200, 150), Count: 350},
		{Color: rgb(20, 160, 240), Count: 330},
		{Color: rgb(180, 110, 220), Count: 300},
		{Color: rgb(180, 120, 40), Count: 280},
		{Color: rgb(225, 60, 60), Count: 260},
		{Color: rgb(60, 175, 85), Count: 240},
		{Color: rgb(50, 50, 50), Count: 300},
		{Color: rgb(90, 90, 90), Count: 250},
		{Color: rgb(140, 140, 140), Count: 200},
		{Color: rgb(190, 190, 190), Count: 150},
	}
}

func testConfig() *config.Config {
	conf := config.Default()
	conf.Vibrancy = 15
	conf.Likeness = 20
	conf.Similarity = 20
	return &conf
}

// emptyIndex returns an index with an empty queue for every slot.
func emptyIndex() *candidate.Index {
	var idx candidate.Index
	for i := range idx {
		idx[i] = candidate.NewQueue()
	}
	return &idx
}

func TestAccent(t *testing.T) {
	pool := candidate.Pool{
		{Color: rgb(20, 20, 20), Count: 1000},
		{Color: rgb(220, 50, 50), Count: 500},
		{Color: rgb(220, 60, 60), Count: 500},
		{Color: rgb(220, 50, 50), Count: 3},
		{Color: rgb(220, 90, 90), Count: 20},
		{Color: rgb(60, 50, 180), Count: 499},
	}

	accent, err := Accent(&pool, 15)
	if err != nil {
		t.Fatal(err)
	}
	if want := rgb(220, 50, 50); accent != want {
		t.Errorf("Accent() = %v, want %v", accent, want)
	}

	// only the exact color is removed, colors sharing a channel value stay
	want := candidate.Pool{
		{Color: rgb(20, 20, 20), Count: 1000},
		{Color: rgb(220, 60, 60), Count: 500},
		{Color: rgb(220, 90, 90), Count: 20},
		{Color: rgb(60, 50, 180), Count: 499},
	}
	if d := cmp.Diff(want, pool); d != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", d)
	}
}

func TestAccentErrors(t *testing.T) {
	tests := []struct {
		name string
		pool candidate.Pool
	}{
		{"empty", nil},
		{"grayscale", candidate.Pool{
			{Color: rgb(20, 20, 20), Count: 10},
			{Color: rgb(128, 125, 128), Count: 5},
			{Color: rgb(250, 250, 250), Count: 1},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Accent(&test.pool, 15)
			if !errors.Is(err, ErrNoAccent) {
				t.Errorf("Accent() error = %v, want %v", err, ErrNoAccent)
			}
		})
	}

	if _, err := Generate(&testTemplate, nil, testConfig(), nil); !errors.Is(err, ErrNoAccent) {
		t.Errorf("Generate() error = %v, want %v", err, ErrNoAccent)
	}
}

func TestGenerate(t *testing.T) {
	conf := testConfig()
	pal, err := Generate(&testTemplate, testPool(), conf, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := base16.Palette{}
	for i, c := range []colorspace.RGB{
		rgb(20, 20, 20), rgb(50, 50, 50), rgb(90, 90, 90), rgb(140, 140, 140),
		rgb(190, 190, 190), rgb(230, 230, 230), rgb(230, 230, 230), rgb(190, 190, 190),
		rgb(220, 50, 164), rgb(250, 130, 80), rgb(240, 200, 50), rgb(143, 220, 50),
		rgb(40, 200, 150), rgb(220, 50, 50), rgb(180, 110, 220), rgb(180, 120, 40),
	} {
		want.Set(i, c)
	}
	if d := cmp.Diff(want, pal); d != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", d)
	}

	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		ci, ok := pal.Get(i)
		if !ok {
			t.Fatalf("chromatic slot %d is empty", i)
		}
		for j := i + 1; j < base16.Slots; j++ {
			cj, _ := pal.Get(j)
			if d := conf.Distance(ci, cj); d < conf.Similarity {
				t.Errorf("slots %d and %d too similar: %v %v (%d)", i, j, ci, cj, d)
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	pool := testPool()
	p1, err := Generate(&testTemplate, pool.Clone(), testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// same content, different order
	shuffled := pool.Clone()
	for i, j := 0, len(shuffled)-1; i < j; i, j = i+1, j-1 {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	p2, err := Generate(&testTemplate, shuffled, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(p1, p2); d != "" {
		t.Errorf("runs differ (-first +second):\n%s", d)
	}
}

func TestGrayscaleAbsent(t *testing.T) {
	idx := emptyIndex()
	idx[0] = candidate.NewQueue(
		candidate.Candidate{Color: rgb(60, 60, 60), Count: 900},
		candidate.Candidate{Color: rgb(30, 30, 30), Count: 10},
	)

	b := &Builder{Template: &testTemplate, Config: testConfig()}
	pal := b.Create(idx, rgb(0, 163, 242))

	if c, ok := pal.Get(0); !ok || c != rgb(30, 30, 30) {
		t.Errorf("slot 0 = %v, %t, want the closest gray", c, ok)
	}
	if idx[0].Len() != 2 {
		t.Errorf("grayscale assignment consumed candidates: %d left", idx[0].Len())
	}
	for i := 1; i < base16.FirstChromatic; i++ {
		if c, ok := pal.Get(i); ok {
			t.Errorf("slot %d = %v, want absent", i, c)
		}
	}
	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		if _, ok := pal.Get(i); !ok {
			t.Errorf("chromatic slot %d is absent", i)
		}
	}
}

func TestAccentNeverDisplaced(t *testing.T) {
	accent := rgb(0, 163, 242)
	idx := emptyIndex()
	idx[8] = candidate.NewQueue(
		candidate.Candidate{Color: accent, Count: 100},
		candidate.Candidate{Color: rgb(225, 93, 103), Count: 50},
	)

	b := &Builder{Template: &testTemplate, Config: testConfig()}
	pal := b.Create(idx, accent)

	if c, _ := pal.Get(base16.Accent); c != accent {
		t.Errorf("accent slot = %v, want %v", c, accent)
	}
	if c, _ := pal.Get(8); c != rgb(225, 93, 103) {
		t.Errorf("slot 8 = %v, want the next candidate", c)
	}
}

func TestConflictPrefersCloserColor(t *testing.T) {
	green := rgb(60, 180, 75)
	idx := emptyIndex()
	// green is closer to the slot 11 template than to the slot 12 one
	idx[11] = candidate.NewQueue(candidate.Candidate{Color: green, Count: 450})
	idx[12] = candidate.NewQueue(
		candidate.Candidate{Color: green, Count: 450},
		candidate.Candidate{Color: rgb(20, 210, 180), Count: 350},
	)

	b := &Builder{Template: &testTemplate, Config: testConfig()}
	pal := b.Create(idx, rgb(220, 50, 50))

	if c, _ := pal.Get(11); c != green {
		t.Errorf("slot 11 = %v, want %v", c, green)
	}
	if c, _ := pal.Get(12); c != rgb(20, 210, 180) {
		t.Errorf("slot 12 = %v, want the runner-up", c)
	}
}

func TestPathologicalTerminates(t *testing.T) {
	var same []candidate.Candidate
	for i := range 200 {
		same = append(same, candidate.Candidate{Color: rgb(200, uint8(40+i%3), 40), Count: uint64(1000 - i)})
	}

	idx := emptyIndex()
	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		idx[i] = candidate.NewQueue(same...)
	}

	conf := testConfig()
	conf.Similarity = 60000
	b := &Builder{Template: &testTemplate, Config: conf}
	pal := b.Create(idx, rgb(0, 163, 242))

	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		if _, ok := pal.Get(i); !ok {
			t.Errorf("chromatic slot %d is absent", i)
		}
	}
}

func TestGenColorBestEffort(t *testing.T) {
	conf := testConfig()
	conf.Tweak.Hue, conf.Tweak.Saturation, conf.Tweak.Light = 0, 0, 0
	b := &Builder{Template: &testTemplate, Config: conf}

	accent := rgb(0, 163, 242)
	mixed := synth.Mix(testTemplate[8], accent, conf.Mix)

	// every other chromatic slot holds the mixed color itself
	var pal base16.Palette
	for i := base16.FirstChromatic; i < base16.Slots; i++ {
		if i != 8 {
			pal.Set(i, mixed)
		}
	}

	// zero tweak factors cannot move the color, it is kept although it
	// collides with every placed color
	if got := b.genColor(&pal, 8, accent); got != mixed {
		t.Errorf("genColor() = %v, want %v", got, mixed)
	}
}
