package align

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mhgcompare/internal/interval"
)

var reCoordSuffix = regexp.MustCompile(`/\d+-\d+$`)

// parseXMFA reads a Mauve XMFA container. Blocks are separated by "=" lines;
// each member header is "> N:start-end strand path". Blocks with fewer than
// two members are dropped, as are members whose start equals end (the block
// is absent in that genome).
func parseXMFA(path string) ([]MHG, error) {
	var (
		mhgs []MHG
		cur  MHG
	)
	flush := func() {
		if len(cur) >= 2 {
			mhgs = append(mhgs, cur)
		}
		cur = nil
	}

	err := eachLine(path, func(lineNo int, line string) error {
		switch {
		case strings.HasPrefix(line, "="):
			flush()
		case strings.HasPrefix(line, ">"):
			iv, ok, err := parseXMFAHeader(line)
			if err != nil {
				return errors.Wrapf(err, "%s:%d", path, lineNo)
			}
			if ok {
				cur = append(cur, iv)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return mhgs, nil
}

func parseXMFAHeader(line string) (interval.Interval, bool, error) {
	fields := strings.Fields(strings.TrimPrefix(line, ">"))
	if len(fields) < 3 {
		return interval.Interval{}, false, errors.Errorf("member header %q: expected 'N:start-end strand path'", line)
	}
	idx := strings.IndexByte(fields[0], ':')
	if idx < 0 {
		return interval.Interval{}, false, errors.Errorf("member header %q: missing coordinate range", line)
	}
	coords := strings.SplitN(fields[0][idx+1:], "-", 2)
	if len(coords) != 2 {
		return interval.Interval{}, false, errors.Errorf("member header %q: bad coordinate range", line)
	}
	start, err := strconv.Atoi(coords[0])
	if err != nil {
		return interval.Interval{}, false, errors.Wrap(err, "bad start")
	}
	end, err := strconv.Atoi(coords[1])
	if err != nil {
		return interval.Interval{}, false, errors.Wrap(err, "bad end")
	}
	if start == end {
		return interval.Interval{}, false, nil
	}
	strand := interval.Forward
	if fields[1] == "-" {
		strand = interval.Reverse
	}
	return interval.Interval{
		Acc:    mauveAccession(fields[2]),
		Start:  start,
		End:    end,
		Strand: strand,
	}, true, nil
}

// mauveAccession strips the "/start-end" reference suffix Mauve appends to
// member identifiers and keeps the final path element.
func mauveAccession(id string) string {
	return path.Base(reCoordSuffix.ReplaceAllString(id, ""))
}
