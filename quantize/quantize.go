// Package quantize reduces an image to a weighted set of representative colors.
package quantize

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"schemegen/candidate"
	"schemegen/colorspace"
	"schemegen/parallel"
)

// stripHeight is the number of rows bucketed by a single task.
const stripHeight = 64

type bucket struct {
	count   uint64
	r, g, b uint64
}

type buckets map[uint32]*bucket

// Image buckets every pixel of img on the depth most significant bits of each
// channel and returns the average color of every bucket with its pixel count,
// ranked. Fully transparent pixels are skipped.
func Image(img image.Image, depth uint8, do parallel.WorkerFunc) (candidate.Pool, error) {
	if depth < 1 || depth > 8 {
		return nil, fmt.Errorf("invalid quantization depth %d, expected 1-8", depth)
	}

	var (
		mu     sync.Mutex
		merged = buckets{}
		tasks  []func()
		bounds = img.Bounds()
	)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stripHeight {
		strip := image.Rect(bounds.Min.X, y, bounds.Max.X, min(y+stripHeight, bounds.Max.Y))
		tasks = append(tasks, func() {
			local := scan(img, strip, depth)

			mu.Lock()
			defer mu.Unlock()
			merged.merge(local)
		})
	}
	parallel.Batch(do, tasks)

	pool := make(candidate.Pool, 0, len(merged))
	for _, b := range merged {
		pool = append(pool, candidate.Candidate{
			Color: colorspace.RGB{
				R: uint8(b.r / b.count),
				G: uint8(b.g / b.count),
				B: uint8(b.b / b.count),
			},
			Count: b.count,
		})
	}
	pool.Sort()

	return pool, nil
}

func scan(img image.Image, r image.Rectangle, depth uint8) buckets {
	res := buckets{}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}

			k := Key(c.R, c.G, c.B, depth)
			b, ok := res[k]
			if !ok {
				b = &bucket{}
				res[k] = b
			}
			b.count++
			b.r += uint64(c.R)
			b.g += uint64(c.G)
			b.b += uint64(c.B)
		}
	}
	return res
}

func (bs buckets) merge(o buckets) {
	for k, b := range o {
		if dst, ok := bs[k]; ok {
			dst.count += b.count
			dst.r += b.r
			dst.g += b.g
			dst.b += b.b
		} else {
			bs[k] = b
		}
	}
}

// Key identifies the bucket of a color: the depth most significant bits of
// the red, green and blue channels, concatenated.
func Key(r, g, b, depth uint8) uint32 {
	shift := 8 - depth
	return uint32(r>>shift)<<(2*depth) | uint32(g>>shift)<<depth | uint32(b>>shift)
}
