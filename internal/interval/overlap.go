package interval

import (
	store "github.com/biogo/store/interval"
)

// entry adapts an Interval to the biogo interval-tree interface. Ranges are
// widened by one so that closed spans sharing a single boundary position are
// still reported; the caller decides what to do with a zero raw overlap.
type entry struct {
	iv Interval
	id uintptr
}

func (e entry) Overlap(b store.IntRange) bool {
	return e.iv.End+1 > b.Start && e.iv.Start < b.End
}

func (e entry) Range() store.IntRange {
	return store.IntRange{Start: e.iv.Start, End: e.iv.End + 1}
}

func (e entry) ID() uintptr { return e.id }

// Set indexes one partition's intervals by accession for overlap queries.
type Set struct {
	trees map[string]*store.IntTree
}

// NewSet builds per-accession interval trees over ivs.
func NewSet(ivs []Interval) (*Set, error) {
	s := &Set{trees: make(map[string]*store.IntTree)}
	for i, iv := range ivs {
		t, ok := s.trees[iv.Acc]
		if !ok {
			t = &store.IntTree{}
			s.trees[iv.Acc] = t
		}
		if err := t.Insert(entry{iv: iv, id: uintptr(i)}, true); err != nil {
			return nil, err
		}
	}
	for _, t := range s.trees {
		t.AdjustRanges()
	}
	return s, nil
}

// EachOverlap calls fn for every indexed interval whose closed span touches
// or overlaps q, passing the raw half-open overlap length
// (min(End)-max(Start), which is 0 for a pure boundary touch).
func (s *Set) EachOverlap(q Interval, fn func(hit Interval, raw int)) {
	t, ok := s.trees[q.Acc]
	if !ok {
		return
	}
	for _, m := range t.Get(entry{iv: q}) {
		hit := m.(entry).iv
		raw := minInt(q.End, hit.End) - maxInt(q.Start, hit.Start)
		fn(hit, raw)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
