// Package stats derives the per-MHG report values: block counts, total
// lengths, threshold filtering and the fractionalization index.
package stats

import (
	"mhgcompare/internal/interval"
)

// BlockStats aggregates one MHG tag.
type BlockStats struct {
	Count int
	Total int
}

// Mean is the true (non-integer) average block length.
func (b BlockStats) Mean() float64 { return float64(b.Total) / float64(b.Count) }

// Filter folds the block→tag map into per-tag stats, counting each block as
// End-Start+1, then removes every tag whose mean block length is strictly
// below threshold. Threshold 0 keeps everything.
func Filter(tags map[interval.Key]string, threshold int) map[string]BlockStats {
	out := make(map[string]BlockStats)
	for key, tag := range tags {
		s := out[tag]
		s.Count++
		s.Total += key.End - key.Start + 1
		out[tag] = s
	}
	for tag, s := range out {
		if s.Mean() < float64(threshold) {
			delete(out, tag)
		}
	}
	return out
}

// Fractionalization computes 1 − Σ_j (coverage[tag][j]/total[tag])² for each
// tag in st, clamped at 0 against floating accumulation when overlaps
// double-count boundary positions. A tag with no recorded coverage scores 1:
// nothing of it is concentrated anywhere.
func Fractionalization(st map[string]BlockStats, coverage map[string]map[string]int) map[string]float64 {
	out := make(map[string]float64, len(st))
	for tag, s := range st {
		f := 1.0
		for _, ov := range coverage[tag] {
			frac := float64(ov) / float64(s.Total)
			f -= frac * frac
		}
		if f < 0 {
			f = 0
		}
		out[tag] = f
	}
	return out
}
