package subst

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Option configures Read.
type Option func(*readOptions)

type readOptions struct {
	delim   rune
	comment rune
}

const (
	// DefaultDelimiter separates cells in a table file.
	DefaultDelimiter = '\t'

	// DefaultComment starts a comment line.
	DefaultComment = '#'
)

// WithDelimiter sets the cell delimiter. A space selects whitespace mode,
// where any run of blanks separates cells and the header carries no corner
// cell (the NCBI matrix layout). A delimiter equal to the comment rune
// disables comments.
func WithDelimiter(r rune) Option {
	return func(o *readOptions) { o.delim = r }
}

// WithComment sets the comment rune; lines starting with it are skipped.
// Zero disables comments.
func WithComment(r rune) Option {
	return func(o *readOptions) { o.comment = r }
}

func gatherOptions(opts []Option) readOptions {
	o := readOptions{delim: DefaultDelimiter, comment: DefaultComment}
	for _, fn := range opts {
		fn(&o)
	}
	if o.comment == o.delim {
		o.comment = 0
	}
	return o
}

// check rejects runes that cannot separate or introduce cells.
func (o readOptions) check() error {
	for _, r := range [...]rune{o.delim, o.comment} {
		if r == '\r' || r == '\n' || r == '"' || r == utf8.RuneError || !utf8.ValidRune(r) {
			return fmt.Errorf("delimiter or comment %q: %w", r, ErrMalformedTable)
		}
	}
	if o.delim == 0 {
		return fmt.Errorf("empty delimiter: %w", ErrMalformedTable)
	}
	return nil
}

// Read parses a labeled table. The first record is a header of column
// labels; in delimited mode its first cell is the corner and is ignored.
// Every following record is a row label followed by one score per column.
// Labels must be single symbols.
//
// Errors are ErrMalformedTable wrapped with the offending line.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)
	if err := o.check(); err != nil {
		return nil, err
	}

	records, err := readRecords(r, o)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header and at least one row: %w", ErrMalformedTable)
	}

	header := records[0].fields
	if o.delim != ' ' {
		header = header[1:]
	}
	cols, err := labels(header, records[0].line)
	if err != nil {
		return nil, err
	}

	rows := make([]byte, 0, len(records)-1)
	scores := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec.fields) != len(cols)+1 {
			return nil, fmt.Errorf("line %d: %d cells, want %d: %w", rec.line, len(rec.fields), len(cols)+1, ErrMalformedTable)
		}
		label, err := labels(rec.fields[:1], rec.line)
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(cols))
		for k, cell := range rec.fields[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: %v: %w", rec.line, cols[k], err, ErrMalformedTable)
			}
			row[k] = v
		}
		rows = append(rows, label[0])
		scores = append(scores, row)
	}

	t, err := NewLabeled(rows, cols, scores)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

type record struct {
	line   int
	fields []string
}

func readRecords(r io.Reader, o readOptions) ([]record, error) {
	if o.delim == ' ' {
		return readFields(r, o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.delim
	cr.Comment = o.comment
	cr.FieldsPerRecord = -1 // ragged rows are reported by Read with line numbers
	cr.ReuseRecord = false

	var out []record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrMalformedTable)
		}
		line, _ := cr.FieldPos(0)
		out = append(out, record{line: line, fields: fields})
	}
}

func readFields(r io.Reader, o readOptions) ([]record, error) {
	var out []record
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || (o.comment != 0 && strings.HasPrefix(text, string(o.comment))) {
			continue
		}
		out = append(out, record{line: line, fields: strings.Fields(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func labels(fields []string, line int) ([]byte, error) {
	out := make([]byte, len(fields))
	for k, f := range fields {
		f = strings.TrimSpace(f)
		if len(f) != 1 {
			return nil, fmt.Errorf("line %d: label %q is not a single symbol: %w", line, f, ErrMalformedTable)
		}
		out[k] = f[0]
	}
	return out, nil
}
