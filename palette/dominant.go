package palette

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/jcc/convert"
)

type colorCount struct {
	rgb   convert.RGB
	count int
}

type byCount []colorCount

func (ccs byCount) Len() int           { return len(ccs) }
func (ccs byCount) Less(i, j int) bool { return ccs[i].count > ccs[j].count }
func (ccs byCount) Swap(i, j int)      { ccs[i], ccs[j] = ccs[j], ccs[i] }

// Dominant retrieves the n colors that best represent an in-memory image,
// most prevalent first. The image is quantized down to an n-color palette
// and the surviving colors are ranked by pixel count.
func Dominant(img image.Image, n int) ([]convert.RGB, error) {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, n, false, true)

	m := make(map[color.Color]int)
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			m[o.At(x, y)]++
		}
	}
	if len(m) != n {
		return nil, fmt.Errorf("image does not have enough variation to support %d dominant colors", n)
	}

	ccs := make(byCount, 0, len(m))
	for k, v := range m {
		r, g, b, _ := k.RGBA()
		rgb := convert.RGB{float64(byte(r >> 8)), float64(byte(g >> 8)), float64(byte(b >> 8))}
		ccs = append(ccs, colorCount{rgb, v})
	}
	sort.Sort(ccs)

	out := make([]convert.RGB, len(ccs))
	for i, cc := range ccs {
		out[i] = cc.rgb
	}
	return out, nil
}
