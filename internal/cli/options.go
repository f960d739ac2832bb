package cli

import (
	"errors"
	"flag"
	"fmt"

	"mhgcompare/internal/align"
	"mhgcompare/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	GenomeDir  string
	AlignmentA string
	AlignmentB string
	AType      string
	BType      string

	GenomeBedOutput string
	PrefixA         string
	PrefixB         string
	Threshold       int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s: compare two whole-genome alignment partitions\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage of %s:\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --genome dir              directory of genome FASTA files [*]")
		fmt.Fprintln(out, "      --alignmentA path         alignment A file [*]")
		fmt.Fprintln(out, "      --alignmentB path         alignment B file [*]")
		fmt.Fprintln(out, "      --AType string            format of A: mhg | mauve | cactus | sibeliaz [*]")
		fmt.Fprintln(out, "      --BType string            format of B: mhg | mauve | cactus | sibeliaz [*]")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "      --genome_bed_output path  genome length table output [genome.bed]")
		fmt.Fprintln(out, "      --prefixA string          tag/report prefix for A [A]")
		fmt.Fprintln(out, "      --prefixB string          tag/report prefix for B [B]")

		fmt.Fprintln(out, "\nFiltering:")
		fmt.Fprintln(out, "      --threshold int           drop MHGs with mean block length below this (0=keep all) [60]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                   suppress progress logging")
		fmt.Fprintln(out, "  -v, --version                 print version and exit")
		fmt.Fprintln(out, "  -h                            show this help message")
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.GenomeDir, "genome", "", "genome FASTA directory [*]")
	fs.StringVar(&opt.AlignmentA, "alignmentA", "", "alignment A file [*]")
	fs.StringVar(&opt.AlignmentB, "alignmentB", "", "alignment B file [*]")
	fs.StringVar(&opt.AType, "AType", "", "format of alignment A: mhg | mauve | cactus | sibeliaz [*]")
	fs.StringVar(&opt.BType, "BType", "", "format of alignment B: mhg | mauve | cactus | sibeliaz [*]")

	fs.StringVar(&opt.GenomeBedOutput, "genome_bed_output", "genome.bed", "genome length table output path [genome.bed]")
	fs.StringVar(&opt.PrefixA, "prefixA", "A", "tag/report prefix for partition A [A]")
	fs.StringVar(&opt.PrefixB, "prefixB", "B", "tag/report prefix for partition B [B]")
	fs.IntVar(&opt.Threshold, "threshold", 60, "minimum mean block length per MHG (0 = no filtering) [60]")

	fs.BoolVar(&opt.Quiet, "q", false, "suppress progress logging (shorthand) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.GenomeDir == "":
		return opt, errors.New("--genome is required")
	case opt.AlignmentA == "":
		return opt, errors.New("--alignmentA is required")
	case opt.AlignmentB == "":
		return opt, errors.New("--alignmentB is required")
	}
	if err := validFormat("--AType", opt.AType); err != nil {
		return opt, err
	}
	if err := validFormat("--BType", opt.BType); err != nil {
		return opt, err
	}
	if opt.Threshold < 0 {
		return opt, errors.New("--threshold must be ≥ 0")
	}
	if opt.PrefixA == opt.PrefixB {
		return opt, errors.New("--prefixA and --prefixB must differ")
	}
	return opt, nil
}

func validFormat(flagName, v string) error {
	switch v {
	case align.FormatNative, align.FormatMauve, align.FormatCactus, align.FormatSibeliaz:
		return nil
	case "":
		return fmt.Errorf("%s is required", flagName)
	default:
		return fmt.Errorf("invalid %s %q (want mhg | mauve | cactus | sibeliaz)", flagName, v)
	}
}
