package align

import (
	"reflect"
	"testing"

	"mhgcompare/internal/interval"
)

const cactusFixture = `##maf version=1 scoring=N/A
a
s Anc0.Anc0refChr0 0 50 + 500 ACGT
s hg38.chr1 100 50 + 1000 ACGT
s mm39.chr2 10 40 - 200 ACGT
a
s hg38.chr1 500 20 + 1000 ACGT
s mm39.chr2 90 20 + 200 ACGT
`

func TestParseMAFCactus(t *testing.T) {
	path := write(t, "aln.maf", cactusFixture)
	mhgs, err := Normalize(path, FormatCactus)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	// Second block has only 2 raw members: below the cactus minimum of 3.
	want := []MHG{
		{
			{Acc: "chr1", Start: 100, End: 150, Strand: interval.Forward},
			// reverse strand: end = 200-10, start = 190-40
			{Acc: "chr2", Start: 150, End: 190, Strand: interval.Reverse},
		},
	}
	if !reflect.DeepEqual(mhgs, want) {
		t.Fatalf("got %v\nwant %v", mhgs, want)
	}
}

func TestParseMAFCactusCountsAncestralTowardMinimum(t *testing.T) {
	// Raw member count is 3 including the ancestor, so the block qualifies
	// even though only two real genomes remain after exclusion.
	fixture := `a
s Anc1.ref 0 10 + 100 ACGT
s sp1.c1 0 10 + 100 ACGT
s sp2.c1 0 10 + 100 ACGT
`
	path := write(t, "aln.maf", fixture)
	mhgs, err := Normalize(path, FormatCactus)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(mhgs) != 1 || len(mhgs[0]) != 2 {
		t.Fatalf("want one 2-member MHG, got %v", mhgs)
	}
}

func TestParseMAFSibeliaz(t *testing.T) {
	fixture := `##maf version=1
a
s Seq1 0 30 + 100 ACGT
s Seq2 40 30 + 100 ACGT
a
s Seq1 50 10 + 100 ACGT
`
	path := write(t, "aln.maf", fixture)
	mhgs, err := Normalize(path, FormatSibeliaz)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []MHG{
		{
			// sibeliaz keeps the source name verbatim
			{Acc: "Seq1", Start: 0, End: 30, Strand: interval.Forward},
			{Acc: "Seq2", Start: 40, End: 70, Strand: interval.Forward},
		},
	}
	if !reflect.DeepEqual(mhgs, want) {
		t.Fatalf("got %v\nwant %v", mhgs, want)
	}
}

func TestParseMAFDropsZeroSizeMembers(t *testing.T) {
	fixture := `a
s Seq1 0 10 + 100 ACGT
s Seq2 0 0 + 100 ----
s Seq3 5 10 + 100 ACGT
`
	path := write(t, "aln.maf", fixture)
	mhgs, err := Normalize(path, FormatSibeliaz)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(mhgs) != 1 || len(mhgs[0]) != 2 {
		t.Fatalf("want one 2-member MHG, got %v", mhgs)
	}
}

func TestParseMAFReverseStrandReconstruction(t *testing.T) {
	fixture := `a
s sp1.c1 20 30 - 100 ACGT
s sp2.c1 0 30 + 100 ACGT
s sp3.c1 0 30 + 100 ACGT
`
	path := write(t, "aln.maf", fixture)
	mhgs, err := Normalize(path, FormatCactus)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(mhgs) != 1 {
		t.Fatalf("want 1 MHG, got %v", mhgs)
	}
	rev := mhgs[0][0]
	if rev.Start != 50 || rev.End != 80 || rev.Strand != interval.Reverse {
		t.Fatalf("reverse member: got %v, want start=50 end=80 strand=-", rev)
	}
	if rev.Len() != 30 {
		t.Fatalf("reverse member length: got %d want 30", rev.Len())
	}
}
