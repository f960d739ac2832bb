// Package pangenome completes a normalized partition over the full genome:
// every base ends up claimed by exactly one MHG, original or background.
package pangenome

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/sirupsen/logrus"

	"mhgcompare/internal/align"
	"mhgcompare/internal/genome"
	"mhgcompare/internal/interval"
)

// Partition is one alignment after completion. Tags is the block→MHG map
// keyed by coordinates; TagList holds every tag in assignment order, which
// is also the report row order.
type Partition struct {
	Prefix  string
	MHGs    []align.MHG
	Tags    map[interval.Key]string
	TagList []string
	// BlockFile is the persisted sorted interval file for this partition.
	BlockFile string
}

// Complete synthesizes background MHGs for every uncovered genome region,
// assigns "{prefix}_{i}" tags over the combined list, and persists the
// sorted interval set to blockFile.
//
// Tag order is deterministic: original MHGs in input order first, then
// background MHGs by (accession, start). The file is not removed afterwards;
// its lifecycle belongs to the caller.
func Complete(mhgs []align.MHG, table genome.Table, prefix, blockFile string) (*Partition, error) {
	var flat []interval.Interval
	for _, m := range mhgs {
		for _, iv := range m {
			iv.Strand = interval.Forward
			flat = append(flat, iv)
		}
	}

	background := interval.Complement(flat, map[string]int(table))

	all := make([]align.MHG, 0, len(mhgs)+len(background))
	all = append(all, mhgs...)
	for _, iv := range background {
		all = append(all, align.MHG{iv})
	}

	tags := make(map[interval.Key]string)
	tagList := make([]string, len(all))
	for i, m := range all {
		tag := fmt.Sprintf("%s_%d", prefix, i)
		tagList[i] = tag
		for _, iv := range m {
			tags[interval.KeyOf(iv)] = tag
		}
	}

	combined := append(flat, background...)
	interval.Sort(combined)
	if err := WriteIntervals(blockFile, combined); err != nil {
		return nil, err
	}

	logrus.Infof("partition %s: %d aligned MHGs + %d background, %d intervals",
		prefix, len(mhgs), len(background), len(combined))

	return &Partition{
		Prefix:    prefix,
		MHGs:      all,
		Tags:      tags,
		TagList:   tagList,
		BlockFile: blockFile,
	}, nil
}

// WriteIntervals persists intervals as a tab-separated accession/start/end
// file in the given order.
func WriteIntervals(path string, ivs []interval.Interval) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	for _, iv := range ivs {
		fmt.Fprintf(w, "%s\t%d\t%d\n", iv.Acc, iv.Start, iv.End)
	}
	return errors.Wrapf(w.Close(), "writing %s", path)
}

// ReadIntervals loads a file written by WriteIntervals. All intervals come
// back forward-strand; strand is not part of the persisted form.
func ReadIntervals(path string) ([]interval.Interval, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer r.Close()

	var ivs []interval.Interval
	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimRight(line, "\n")
			fields := strings.Split(line, "\t")
			if len(fields) != 3 {
				return nil, errors.Errorf("%s:%d: expected 3 fields, got %d", path, lineNo, len(fields))
			}
			start, e1 := strconv.Atoi(fields[1])
			end, e2 := strconv.Atoi(fields[2])
			if e1 != nil || e2 != nil {
				return nil, errors.Errorf("%s:%d: bad coordinates %q %q", path, lineNo, fields[1], fields[2])
			}
			ivs = append(ivs, interval.Interval{Acc: fields[0], Start: start, End: end, Strand: interval.Forward})
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	return ivs, nil
}
