package align

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mhgcompare/internal/interval"
)

// ancestralPrefix marks reconstructed ancestor sequences in progressive
// aligner output; such members never name a real genome.
const ancestralPrefix = "Anc"

// mafRules captures the per-tool differences between the MAF consumers.
type mafRules struct {
	// minMembers is the qualifying member count, checked against the raw
	// block size before ancestral exclusion.
	minMembers int
	// stripSpecies drops the leading species segment (up to the first '.')
	// from the source name to obtain the accession.
	stripSpecies bool
}

type mafMember struct {
	src    string
	iv     interval.Interval
	anc    bool
	zeroed bool
}

// parseMAF reads a MAF container: "a" opens a block, "s" lines are members
// with fields (src, start, size, strand, srcSize, text). Reverse-strand
// members store start relative to the reverse complement, so the forward
// coordinate is reconstructed from srcSize.
func parseMAF(path string, rules mafRules) ([]MHG, error) {
	var (
		mhgs []MHG
		cur  []mafMember
		open bool
	)
	flush := func() {
		defer func() { cur = nil }()
		if !open || len(cur) < rules.minMembers {
			return
		}
		var mhg MHG
		for _, m := range cur {
			if m.anc || m.zeroed {
				continue
			}
			mhg = append(mhg, m.iv)
		}
		if len(mhg) >= 2 {
			mhgs = append(mhgs, mhg)
		}
	}

	err := eachLine(path, func(lineNo int, line string) error {
		switch {
		case strings.HasPrefix(line, "a"):
			flush()
			open = true
		case strings.HasPrefix(line, "s"):
			if !open {
				return errors.Errorf("%s:%d: s line outside alignment block", path, lineNo)
			}
			m, err := parseMAFMember(line, rules)
			if err != nil {
				return errors.Wrapf(err, "%s:%d", path, lineNo)
			}
			cur = append(cur, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return mhgs, nil
}

func parseMAFMember(line string, rules mafRules) (mafMember, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return mafMember{}, errors.Errorf("s line %q: expected at least 6 fields", line)
	}
	src := fields[1]
	start, err := strconv.Atoi(fields[2])
	if err != nil {
		return mafMember{}, errors.Wrap(err, "bad start")
	}
	size, err := strconv.Atoi(fields[3])
	if err != nil {
		return mafMember{}, errors.Wrap(err, "bad size")
	}
	srcSize, err := strconv.Atoi(fields[5])
	if err != nil {
		return mafMember{}, errors.Wrap(err, "bad source size")
	}

	m := mafMember{src: src, anc: strings.HasPrefix(src, ancestralPrefix), zeroed: size == 0}

	acc := src
	if rules.stripSpecies {
		if i := strings.IndexByte(src, '.'); i >= 0 {
			acc = src[i+1:]
		}
	}

	iv := interval.Interval{Acc: acc, Strand: interval.Forward}
	if fields[4] == "-" {
		// Stored relative to the reverse complement.
		iv.Strand = interval.Reverse
		iv.End = srcSize - start
		iv.Start = iv.End - size
	} else {
		iv.Start = start
		iv.End = start + size
	}
	m.iv = iv
	return m, nil
}
