// Package app wires the full comparison pipeline behind a testable
// entry point with the CLI exit-code protocol: 0 success, 2 usage error,
// 1 runtime failure.
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"mhgcompare/internal/align"
	"mhgcompare/internal/cli"
	"mhgcompare/internal/cmdutil"
	"mhgcompare/internal/genome"
	"mhgcompare/internal/overlap"
	"mhgcompare/internal/pangenome"
	"mhgcompare/internal/report"
	"mhgcompare/internal/stats"
	"mhgcompare/internal/version"
)

// Run executes the tool and returns its exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mhgcompare")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mhgcompare version %s\n", version.Version)
		return 0
	}

	cmdutil.SetupLogging(stderr, opts.Quiet)

	if err := run(opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func run(opts cli.Options) error {
	table, err := genome.BuildTable(opts.GenomeDir)
	if err != nil {
		return err
	}
	if err := table.Write(opts.GenomeBedOutput); err != nil {
		return err
	}

	partA, err := preparePartition(opts.AlignmentA, opts.AType, opts.PrefixA, table)
	if err != nil {
		return err
	}
	partB, err := preparePartition(opts.AlignmentB, opts.BType, opts.PrefixB, table)
	if err != nil {
		return err
	}

	stA := stats.Filter(partA.Tags, opts.Threshold)
	stB := stats.Filter(partB.Tags, opts.Threshold)

	covA, covB, err := overlap.Compute(partA, partB)
	if err != nil {
		return err
	}

	fracA := stats.Fractionalization(stA, map[string]map[string]int(covA))
	fracB := stats.Fractionalization(stB, map[string]map[string]int(covB))

	if err := report.Write(opts.PrefixA+".tsv", partA.TagList, stA, fracA); err != nil {
		return err
	}
	return report.Write(opts.PrefixB+".tsv", partB.TagList, stB, fracB)
}

func preparePartition(path, format, prefix string, table genome.Table) (*pangenome.Partition, error) {
	mhgs, err := align.Normalize(path, format)
	if err != nil {
		return nil, err
	}
	return pangenome.Complete(mhgs, table, prefix, prefix+"_blocks.bed")
}
