// Package palette matches colors against named palettes: nearest-color
// lookup by CIE2000 color difference, palette reduction, histograms, and
// dominant-color extraction.
package palette

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"sync"

	_ "embed"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/jcc/convert"
)

// MaxColors is the largest number of colors a palette can hold, so that
// palette indices always fit in a uint16.
const MaxColors = 1 << 16

var klch = &deltae.KLChDefault

// Color is a single palette entry.
type Color struct {
	Group string
	Name  string
	RGB   convert.RGB
	Hex   string
}

// Palette represents a palette of named colors, sorted by group and then by
// RGB. A Palette is read-only once created and safe for concurrent use,
// except for BuildLookup and LoadLookup.
type Palette struct {
	colors []Color
	labs   []chromath.Lab
	lookup []uint16
}

// New creates a palette from a slice of colors. The colors are copied,
// sorted, and their hex strings derived from their RGB values.
func New(colors []Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}
	if len(colors) > MaxColors {
		return nil, fmt.Errorf("palette has %d colors, max is %d", len(colors), MaxColors)
	}

	cs := make([]Color, len(colors))
	copy(cs, colors)
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Group != cs[j].Group {
			return cs[i].Group < cs[j].Group
		}
		if cs[i].RGB.R() != cs[j].RGB.R() {
			return cs[i].RGB.R() < cs[j].RGB.R()
		}
		if cs[i].RGB.G() != cs[j].RGB.G() {
			return cs[i].RGB.G() < cs[j].RGB.G()
		}
		return cs[i].RGB.B() < cs[j].RGB.B()
	})

	labs := make([]chromath.Lab, len(cs))
	for i := range cs {
		cs[i].Hex = rgb2Hex(cs[i].RGB)
		labs[i] = chromath.Lab(convert.RGB2Lab(cs[i].RGB))
	}

	return &Palette{colors: cs, labs: labs}, nil
}

// Load reads palette data in CSV form, one color per row:
// group,name,r,g,b with channels in 0-255.
func Load(r io.Reader) (*Palette, error) {
	records, e := csv.NewReader(r).ReadAll()
	if e != nil {
		return nil, e
	}

	colors := make([]Color, 0, len(records))
	for i, rec := range records {
		if len(rec) != 5 {
			return nil, fmt.Errorf("row %d: want 5 fields, got %d", i+1, len(rec))
		}
		var rgb convert.RGB
		for j, field := range rec[2:] {
			v, e := strconv.Atoi(field)
			if e != nil {
				return nil, fmt.Errorf("row %d: %v", i+1, e)
			}
			rgb[j] = float64(v)
		}
		colors = append(colors, Color{Group: rec[0], Name: rec[1], RGB: rgb})
	}

	return New(colors)
}

// LoadFile reads a palette from a CSV file.
func LoadFile(path string) (*Palette, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	return Load(f)
}

//go:embed data/x11.csv
var x11CSV []byte

var (
	x11     *Palette
	x11Once sync.Once
)

// X11 returns the builtin palette derived from the X11 color names.
func X11() *Palette {
	x11Once.Do(func() {
		p, e := Load(bytes.NewReader(x11CSV))
		if e != nil {
			panic(e)
		}
		x11 = p
	})
	return x11
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int { return len(p.colors) }

// Color returns the palette entry at index i.
func (p *Palette) Color(i int) Color { return p.colors[i] }

// Colors returns a copy of all palette entries in palette order.
func (p *Palette) Colors() []Color {
	cs := make([]Color, len(p.colors))
	copy(cs, p.colors)
	return cs
}

// Nearest returns the index of the perceptually closest palette color and
// its CIE2000 distance.
func (p *Palette) Nearest(c convert.RGB) (int, float64) {
	lab := chromath.Lab(convert.RGB2Lab(c))

	best := 0
	min := deltae.CIE2000(lab, p.labs[0], klch)
	for i := 1; i < len(p.labs); i++ {
		if d := deltae.CIE2000(lab, p.labs[i], klch); d < min {
			best = i
			min = d
		}
	}
	return best, min
}

// ConvertToIndices maps every sample to its nearest palette index, through
// the lookup table when one has been built.
func (p *Palette) ConvertToIndices(in []convert.RGB) []uint16 {
	out := make([]uint16, len(in))
	if p.lookup != nil {
		for i, c := range in {
			out[i] = p.lookup[convert.Index(c)]
		}
		return out
	}
	for i, c := range in {
		ix, _ := p.Nearest(c)
		out[i] = uint16(ix)
	}
	return out
}

// ConvertToRGBs reduces every sample to the RGB value of its nearest
// palette color.
func (p *Palette) ConvertToRGBs(in []convert.RGB) []convert.RGB {
	out := make([]convert.RGB, len(in))
	for i, ix := range p.ConvertToIndices(in) {
		out[i] = p.colors[ix].RGB
	}
	return out
}

func rgb2Hex(c convert.RGB) string {
	ix := convert.Index(c)
	return fmt.Sprintf("#%02x%02x%02x", byte(ix>>16), byte(ix>>8), byte(ix))
}
