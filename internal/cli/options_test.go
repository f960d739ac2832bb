package cli

import (
	"flag"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func baseArgs() []string {
	return []string{
		"--genome", "genomes/",
		"--alignmentA", "a.maf",
		"--alignmentB", "b.xmfa",
		"--AType", "cactus",
		"--BType", "mauve",
	}
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	opts := mustParse(t, baseArgs()...)
	if opts.GenomeBedOutput != "genome.bed" {
		t.Errorf("genome_bed_output default: %q", opts.GenomeBedOutput)
	}
	if opts.PrefixA != "A" || opts.PrefixB != "B" {
		t.Errorf("prefix defaults: %q %q", opts.PrefixA, opts.PrefixB)
	}
	if opts.Threshold != 60 {
		t.Errorf("threshold default: %d", opts.Threshold)
	}
	if opts.Quiet {
		t.Error("quiet should default off")
	}
}

func TestMissingRequired(t *testing.T) {
	cases := [][]string{
		{"--alignmentA", "a", "--alignmentB", "b", "--AType", "mhg", "--BType", "mhg"},
		{"--genome", "g", "--alignmentB", "b", "--AType", "mhg", "--BType", "mhg"},
		{"--genome", "g", "--alignmentA", "a", "--AType", "mhg", "--BType", "mhg"},
		{"--genome", "g", "--alignmentA", "a", "--alignmentB", "b", "--BType", "mhg"},
		{"--genome", "g", "--alignmentA", "a", "--alignmentB", "b", "--AType", "mhg"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}

func TestInvalidFormatTag(t *testing.T) {
	args := append(baseArgs()[:8], "--BType", "clustal")
	_, err := ParseArgs(newFS(), args)
	if err == nil || !strings.Contains(err.Error(), "invalid --BType") {
		t.Fatalf("want invalid --BType error, got %v", err)
	}
}

func TestNegativeThreshold(t *testing.T) {
	args := append(baseArgs(), "--threshold", "-1")
	if _, err := ParseArgs(newFS(), args); err == nil {
		t.Fatal("negative threshold must fail")
	}
}

func TestEqualPrefixesRejected(t *testing.T) {
	args := append(baseArgs(), "--prefixA", "X", "--prefixB", "X")
	if _, err := ParseArgs(newFS(), args); err == nil {
		t.Fatal("equal prefixes must fail")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if err != flag.ErrHelp {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	opts, err := ParseArgs(newFS(), []string{"-v"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !opts.Version {
		t.Fatal("version flag not set")
	}
}
