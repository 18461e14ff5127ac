package palette

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/mmuldo/jcc/convert"
)

const lookupLen = 1 << 24

// BuildLookup computes the nearest palette index for every 8-bit RGB value,
// parallel across the red axis. The table makes ConvertToIndices a plain
// array read at the cost of 32 MiB and a long build, so callers normally
// build once and cache with SaveLookup.
func (p *Palette) BuildLookup() {
	table := make([]uint16, lookupLen)

	var wg sync.WaitGroup
	for r := 0; r < 256; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for g := 0; g < 256; g++ {
				for b := 0; b < 256; b++ {
					c := convert.RGB{float64(r), float64(g), float64(b)}
					ix, _ := p.Nearest(c)
					table[convert.Index(c)] = uint16(ix)
				}
			}
		}(r)
	}
	wg.Wait()

	p.lookup = table
}

// HasLookup reports whether a lookup table is in place.
func (p *Palette) HasLookup() bool { return p.lookup != nil }

// SaveLookup writes the lookup table to path as flat little-endian uint16s.
func (p *Palette) SaveLookup(path string) error {
	if p.lookup == nil {
		return fmt.Errorf("lookup table has not been built yet")
	}

	f, e := os.Create(path)
	if e != nil {
		return e
	}

	w := bufio.NewWriter(f)
	if e := binary.Write(w, binary.LittleEndian, p.lookup); e != nil {
		f.Close()
		return e
	}
	if e := w.Flush(); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}

// LoadLookup reads a lookup table previously written by SaveLookup. The
// table must belong to this palette's color set for the indices to mean
// anything.
func (p *Palette) LoadLookup(path string) error {
	f, e := os.Open(path)
	if e != nil {
		return e
	}
	defer f.Close()

	table := make([]uint16, lookupLen)
	if e := binary.Read(bufio.NewReader(f), binary.LittleEndian, table); e != nil {
		return e
	}

	p.lookup = table
	return nil
}
