// Package interval holds the canonical genomic interval representation and
// the sorted-set operations (complement, overlap arithmetic) the pipeline is
// built on. All coordinates are 0-based with End > Start; parsers produce End
// such that End-Start is the block length.
package interval

import (
	"fmt"
	"sort"
)

// Strand constants. Background blocks synthesized during pangenome
// completion are always forward.
const (
	Forward byte = '+'
	Reverse byte = '-'
)

// Interval is one aligned block on one genomic sequence.
type Interval struct {
	Acc    string
	Start  int
	End    int
	Strand byte
}

// Len is the half-open span length.
func (iv Interval) Len() int { return iv.End - iv.Start }

func (iv Interval) String() string {
	return fmt.Sprintf("%s|%d|%d|%c", iv.Acc, iv.Start, iv.End, iv.Strand)
}

// Key identifies an interval by coordinates only. Strand is deliberately
// excluded: cross-partition correlation runs on coordinates alone, so two
// partitions must share accession naming.
type Key struct {
	Acc        string
	Start, End int
}

// KeyOf returns the coordinate key for iv.
func KeyOf(iv Interval) Key { return Key{Acc: iv.Acc, Start: iv.Start, End: iv.End} }

// Sort orders intervals by accession, then start, then end. This is the
// canonical order of the per-partition interval file.
func Sort(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		a, b := ivs[i], ivs[j]
		if a.Acc != b.Acc {
			return a.Acc < b.Acc
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
}
