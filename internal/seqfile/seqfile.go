// Package seqfile loads the two input sequences of an alignment, either from
// literal strings or from a FASTA file.
package seqfile

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrTooFewRecords indicates a FASTA source with fewer than two records.
	ErrTooFewRecords = errors.New("seqfile: need two sequences")

	// ErrEmptySequence indicates a record or literal with no residues.
	ErrEmptySequence = errors.New("seqfile: empty sequence")
)

// Record is one named sequence.
type Record struct {
	ID  string
	Seq string
}

// Read parses every FASTA record from r. Residues are kept as written;
// line breaks inside a record are dropped.
func Read(r io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var out []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("seqfile: unexpected sequence type %T", sc.Seq())
		}
		out = append(out, Record{ID: s.Name(), Seq: letters(s.Seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("seqfile: %w", err)
	}
	return out, nil
}

// ReadFile reads FASTA records from path. "-" reads standard input and
// gzip input is detected by magic number or a .gz suffix.
func ReadFile(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Pair returns the first two records, which must both be non-empty.
func Pair(recs []Record) (a, b Record, err error) {
	if len(recs) < 2 {
		return a, b, fmt.Errorf("got %d: %w", len(recs), ErrTooFewRecords)
	}
	for _, r := range recs[:2] {
		if r.Seq == "" {
			return a, b, fmt.Errorf("record %q: %w", r.ID, ErrEmptySequence)
		}
	}
	return recs[0], recs[1], nil
}

// Literal wraps a sequence given on the command line. Surrounding blanks
// are trimmed.
func Literal(id, s string) (Record, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Record{}, fmt.Errorf("%s: %w", id, ErrEmptySequence)
	}
	return Record{ID: id, Seq: s}, nil
}

func letters(ls alphabet.Letters) string {
	b := make([]byte, len(ls))
	for k, l := range ls {
		b[k] = byte(l)
	}
	return string(b)
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
