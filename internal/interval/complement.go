package interval

import "sort"

// Complement returns, per accession, the regions of [0, length) not covered
// by any input interval. Input need not be sorted; strand is ignored. The
// returned intervals follow two quirks of the reference pipeline that
// downstream arithmetic depends on:
//
//   - a complement interval starting at 0 has its start clamped to 1;
//   - complement intervals shorter than 2 are discarded as degenerate.
//
// Accessions present in lengths but absent from ivs yield one complement
// interval spanning the whole sequence. Accessions absent from lengths are
// skipped. Output is in canonical sorted order.
func Complement(ivs []Interval, lengths map[string]int) []Interval {
	byAcc := make(map[string][]Interval, len(lengths))
	for _, iv := range ivs {
		byAcc[iv.Acc] = append(byAcc[iv.Acc], iv)
	}

	accs := make([]string, 0, len(lengths))
	for acc := range lengths {
		accs = append(accs, acc)
	}
	sort.Strings(accs)

	var out []Interval
	for _, acc := range accs {
		length := lengths[acc]
		covered := byAcc[acc]
		Sort(covered)

		emit := func(start, end int) {
			if start == 0 {
				start = 1
			}
			if end-start < 2 {
				return
			}
			out = append(out, Interval{Acc: acc, Start: start, End: end, Strand: Forward})
		}

		cursor := 0
		for _, iv := range covered {
			if iv.Start > cursor {
				emit(cursor, iv.Start)
			}
			if iv.End > cursor {
				cursor = iv.End
			}
		}
		if cursor < length {
			emit(cursor, length)
		}
	}
	return out
}
