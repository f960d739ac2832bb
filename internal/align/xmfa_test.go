package align

import (
	"reflect"
	"testing"

	"mhgcompare/internal/interval"
)

const xmfaFixture = `#FormatVersion Mauve1
> 1:100-200 + /data/genomes/NC_000913.fa
ACGTACGT
> 2:50-150 - /data/genomes/NC_002695.fa
ACGTACGT
=
> 1:300-400 + /data/genomes/NC_000913.fa
ACGT
=
> 1:500-600 + /data/genomes/NC_000913.fa
ACGT
> 2:0-0 + /data/genomes/NC_002695.fa
----
> 3:700-800 + /data/genomes/NC_011750.fa
ACGT
=
`

func TestParseXMFA(t *testing.T) {
	path := write(t, "aln.xmfa", xmfaFixture)
	mhgs, err := Normalize(path, FormatMauve)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := []MHG{
		{
			{Acc: "NC_000913.fa", Start: 100, End: 200, Strand: interval.Forward},
			{Acc: "NC_002695.fa", Start: 50, End: 150, Strand: interval.Reverse},
		},
		// single-member block dropped
		{
			{Acc: "NC_000913.fa", Start: 500, End: 600, Strand: interval.Forward},
			// 0-0 member dropped (absent in that genome)
			{Acc: "NC_011750.fa", Start: 700, End: 800, Strand: interval.Forward},
		},
	}
	if !reflect.DeepEqual(mhgs, want) {
		t.Fatalf("got %v\nwant %v", mhgs, want)
	}
}

func TestMauveAccession(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/data/genomes/NC_000913.fa", "NC_000913.fa"},
		{"/data/genomes/NC_000913.fa/133-1042", "NC_000913.fa"},
		{"NC_000913.fa", "NC_000913.fa"},
	}
	for _, c := range cases {
		if got := mauveAccession(c.in); got != c.want {
			t.Errorf("mauveAccession(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseXMFADropsSingleAfterMemberFilter(t *testing.T) {
	// Two members, one degenerate: the survivor alone is a self alignment.
	path := write(t, "aln.xmfa", "> 1:10-20 + g1.fa\nACGT\n> 2:0-0 + g2.fa\n----\n=\n")
	mhgs, err := Normalize(path, FormatMauve)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(mhgs) != 0 {
		t.Fatalf("want no MHGs, got %v", mhgs)
	}
}
