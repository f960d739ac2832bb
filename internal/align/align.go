// Package align normalizes heterogeneous alignment-block formats into
// canonical MHG lists (one MHG = the intervals asserted mutually homologous).
package align

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mhgcompare/internal/interval"
)

// MHG is one multi-species homologous group.
type MHG []interval.Interval

// Supported format tags.
const (
	FormatNative   = "mhg"
	FormatMauve    = "mauve"
	FormatCactus   = "cactus"
	FormatSibeliaz = "sibeliaz"
)

// ErrInvalidFormat is returned for an unknown format tag.
var ErrInvalidFormat = errors.New("invalid alignment format")

// Normalize parses the alignment at path according to format and returns its
// MHG list. Parsing is stateless: the same input always yields the same list.
func Normalize(path, format string) ([]MHG, error) {
	switch format {
	case FormatNative:
		return parseNative(path)
	case FormatMauve:
		return parseXMFA(path)
	case FormatCactus:
		return parseMAF(path, mafRules{minMembers: 3, stripSpecies: true})
	case FormatSibeliaz:
		return parseMAF(path, mafRules{minMembers: 2})
	default:
		return nil, errors.Wrap(ErrInvalidFormat, format)
	}
}

// parseNative reads the native MHG format: one MHG per line, blocks
// comma-separated, each block "accession|start|end|strand".
func parseNative(path string) ([]MHG, error) {
	var mhgs []MHG
	err := eachLine(path, func(lineNo int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		var mhg MHG
		for _, blk := range strings.Split(line, ",") {
			iv, err := parseBlock(blk)
			if err != nil {
				return errors.Wrapf(err, "%s:%d", path, lineNo)
			}
			if iv.End <= iv.Start {
				continue
			}
			mhg = append(mhg, iv)
		}
		if len(mhg) > 0 {
			mhgs = append(mhgs, mhg)
		}
		return nil
	})
	return mhgs, err
}

func parseBlock(s string) (interval.Interval, error) {
	fields := strings.Split(strings.TrimSpace(s), "|")
	if len(fields) != 4 {
		return interval.Interval{}, errors.Errorf("block %q: expected 4 fields, got %d", s, len(fields))
	}
	start, err := strconv.Atoi(fields[1])
	if err != nil {
		return interval.Interval{}, errors.Wrapf(err, "block %q: bad start", s)
	}
	end, err := strconv.Atoi(fields[2])
	if err != nil {
		return interval.Interval{}, errors.Wrapf(err, "block %q: bad end", s)
	}
	strand := interval.Forward
	if fields[3] == "-" {
		strand = interval.Reverse
	}
	return interval.Interval{Acc: fields[0], Start: start, End: end, Strand: strand}, nil
}
