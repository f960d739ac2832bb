package align

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// eachLine streams path line by line (transparently decompressing), calling
// fn with 1-based line numbers. ReadString is used instead of a Scanner so
// arbitrarily long alignment rows cannot overflow a token buffer.
func eachLine(path string, fn func(lineNo int, line string) error) error {
	r, err := xopen.Ropen(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer r.Close()

	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			if e := fn(lineNo, strings.TrimRight(line, "\r\n")); e != nil {
				return e
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "reading %s", path)
		}
	}
}
