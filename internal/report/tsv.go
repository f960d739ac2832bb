// Package report writes the per-partition result table.
package report

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"

	"mhgcompare/internal/stats"
)

// TSVHeader is the canonical header row. Keep this as the single source of
// truth for the output contract.
const TSVHeader = "seqCnt\tavgLength\tfracVal"

// Write emits {prefix}.tsv content to path: the header, then one row per
// tag surviving the filter, in tag assignment order. avgLength is the
// rounded mean block length; fracVal carries three decimals.
func Write(path string, tagOrder []string, st map[string]stats.BlockStats, frac map[string]float64) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	fmt.Fprintln(w, TSVHeader)
	for _, tag := range tagOrder {
		s, ok := st[tag]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%.3f\n", s.Count, int(math.Round(s.Mean())), frac[tag])
	}
	return errors.Wrapf(w.Close(), "writing %s", path)
}
