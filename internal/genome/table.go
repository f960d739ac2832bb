// Package genome builds the sequence-length table the pangenome completion
// step complements against.
package genome

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"
	"github.com/sirupsen/logrus"
)

// Table maps sequence name to total length.
type Table map[string]int

var reSeqFile = regexp.MustCompile(`\.(f(ast)?a|fna)(\.gz)?$`)

// BuildTable scans dir for FASTA files (plain or gzipped) and returns the
// name→length table over every record found. Record names are the first
// whitespace-delimited word of the header.
func BuildTable(dir string) (Table, error) {
	isDir, err := pathutil.IsDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "checking genome directory %s", dir)
	}
	if !isDir {
		return nil, errors.Errorf("genome path %s is not a directory", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading genome directory %s", dir)
	}

	table := make(Table)
	nfiles := 0
	for _, ent := range ents {
		if ent.IsDir() || !reSeqFile.MatchString(ent.Name()) {
			continue
		}
		nfiles++
		path := filepath.Join(dir, ent.Name())
		if err := scanFile(path, table); err != nil {
			return nil, err
		}
	}
	if nfiles == 0 {
		return nil, errors.Errorf("no sequence files found in %s", dir)
	}
	logrus.Infof("genome table: %d sequences from %d files", len(table), nfiles)
	return table, nil
}

func scanFile(path string, table Table) error {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "reading %s", path)
		}
		name := string(record.ID)
		if prev, ok := table[name]; ok {
			logrus.Warnf("duplicate sequence name %q (lengths %d and %d); keeping the first", name, prev, len(record.Seq.Seq))
			continue
		}
		table[name] = len(record.Seq.Seq)
	}
}

// Names returns the table's sequence names sorted lexically.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Write persists the table as a sorted tab-separated name/length file.
func (t Table) Write(path string) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	for _, name := range t.Names() {
		fmt.Fprintf(w, "%s\t%d\n", name, t[name])
	}
	return errors.Wrapf(w.Close(), "writing %s", path)
}

// LoadTable reads a table previously written by Write.
func LoadTable(path string) (Table, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer r.Close()

	table := make(Table)
	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimRight(line, "\n")
			fields := strings.Split(line, "\t")
			if len(fields) != 2 {
				return nil, errors.Errorf("%s:%d: expected 2 fields, got %d", path, lineNo, len(fields))
			}
			n, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				return nil, errors.Wrapf(convErr, "%s:%d: bad length", path, lineNo)
			}
			table[fields[0]] = n
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	return table, nil
}
