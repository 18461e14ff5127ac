package palette

import (
	"math"

	"github.com/mmuldo/jcc/convert"
)

// Bucket is one palette color and the number of samples matched to it.
type Bucket struct {
	Color Color
	Count int
}

// GroupCount is the number of samples matched to one color group.
type GroupCount struct {
	Group string
	Count int
}

// used in Entropy to keep log2 away from 0
const entropyEps = 1e-15

var grayscaleGroups = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
}

// Histogram matches every sample to its nearest palette color and returns
// per-color counts in palette order. The samples don't need to be reduced
// to the palette beforehand.
func (p *Palette) Histogram(in []convert.RGB) []Bucket {
	counts := make([]int, p.Len())
	for _, ix := range p.ConvertToIndices(in) {
		counts[ix]++
	}

	bs := make([]Bucket, p.Len())
	for i, c := range p.colors {
		bs[i] = Bucket{Color: c, Count: counts[i]}
	}
	return bs
}

// GroupHistogram folds a histogram into its color groups (blue, red, etc.),
// preserving group order. Groups with no matched samples are kept at count
// zero.
func GroupHistogram(h []Bucket) []GroupCount {
	var order []string
	counts := make(map[string]int)
	for _, b := range h {
		if _, ok := counts[b.Color.Group]; !ok {
			order = append(order, b.Color.Group)
		}
		counts[b.Color.Group] += b.Count
	}

	gs := make([]GroupCount, len(order))
	for i, g := range order {
		gs[i] = GroupCount{Group: g, Count: counts[g]}
	}
	return gs
}

// Entropy calculates the metric entropy of a grouped histogram. Black,
// white, and gray are merged into a single grayscale bucket so that
// grayscale images, which contain only black, white, and shades of gray,
// come out near zero.
func Entropy(gs []GroupCount) float64 {
	total := 0
	for _, g := range gs {
		total += g.Count
	}
	if total == 0 {
		return 0
	}

	grayscale := 0
	probs := []float64{0}
	for _, g := range gs {
		if grayscaleGroups[g.Group] {
			grayscale += g.Count
			continue
		}
		probs = append(probs, float64(g.Count)/float64(total))
	}
	probs[0] = float64(grayscale) / float64(total)

	v := 0.0
	for _, p := range probs {
		v -= p * math.Log2(p+entropyEps)
	}
	v /= float64(len(probs))
	// near-zero entropies can land on the wrong side of zero
	return v * math.Copysign(1, v)
}
