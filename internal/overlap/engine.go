// Package overlap correlates two completed partitions through interval
// coordinates and aggregates the shared length per MHG-tag pair.
package overlap

import (
	"github.com/sirupsen/logrus"

	"mhgcompare/internal/interval"
	"mhgcompare/internal/pangenome"
)

// Coverage maps an MHG tag to, per counterpart tag, the aggregated overlap
// length between the two partitions.
type Coverage map[string]map[string]int

func (c Coverage) add(tag, other string, n int) {
	m, ok := c[tag]
	if !ok {
		m = make(map[string]int)
		c[tag] = m
	}
	m[other] += n
}

// Compute re-reads both partitions' persisted interval files, intersects
// partition A's intervals against an interval tree over partition B, and
// aggregates overlap lengths bidirectionally.
//
// The raw half-open overlap count gets 1 added to it, and pairs whose
// adjusted overlap is exactly 1 are dropped as boundary touches. This keeps
// the inclusive-length convention used by the block statistics; changing it
// changes every downstream fractionalization value.
func Compute(a, b *pangenome.Partition) (covA, covB Coverage, err error) {
	aIvs, err := pangenome.ReadIntervals(a.BlockFile)
	if err != nil {
		return nil, nil, err
	}
	bIvs, err := pangenome.ReadIntervals(b.BlockFile)
	if err != nil {
		return nil, nil, err
	}

	bSet, err := interval.NewSet(bIvs)
	if err != nil {
		return nil, nil, err
	}

	covA = make(Coverage)
	covB = make(Coverage)
	pairs := 0
	for _, qa := range aIvs {
		tagA, ok := a.Tags[interval.KeyOf(qa)]
		if !ok {
			logrus.Warnf("interval %s has no tag in partition %s; skipped", qa, a.Prefix)
			continue
		}
		bSet.EachOverlap(qa, func(hit interval.Interval, raw int) {
			adj := raw + 1
			if adj == 1 {
				return
			}
			tagB, ok := b.Tags[interval.KeyOf(hit)]
			if !ok {
				logrus.Warnf("interval %s has no tag in partition %s; skipped", hit, b.Prefix)
				return
			}
			covA.add(tagA, tagB, adj)
			covB.add(tagB, tagA, adj)
			pairs++
		})
	}
	logrus.Infof("overlap: %d interval pairs aggregated (%d x %d intervals)", pairs, len(aIvs), len(bIvs))
	return covA, covB, nil
}
