package app

import (
	"flag"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/internal/seqfile"
	"github.com/katalvlaran/lvalign/subst"
)

// inputs names where the two sequences come from.
type inputs struct {
	a, b  string
	fasta string
}

func (in *inputs) register(fs *flag.FlagSet) {
	fs.StringVar(&in.a, "a", "", "sequence A (rows of the grid)")
	fs.StringVar(&in.b, "b", "", "sequence B (columns of the grid)")
	fs.StringVar(&in.fasta, "fasta", "", "FASTA file whose first two records are A and B (- for stdin, .gz accepted)")
}

func (in inputs) validate() error {
	switch {
	case in.fasta != "" && (in.a != "" || in.b != ""):
		return fmt.Errorf("-fasta cannot be combined with -a/-b: %w", errUsage)
	case in.fasta == "" && (in.a == "" || in.b == ""):
		return fmt.Errorf("both -a and -b (or -fasta) are required: %w", errUsage)
	}
	return nil
}

func (in inputs) load() (string, string, error) {
	if in.fasta != "" {
		recs, err := seqfile.ReadFile(in.fasta)
		if err != nil {
			return "", "", err
		}
		a, b, err := seqfile.Pair(recs)
		if err != nil {
			return "", "", fmt.Errorf("%s: %w", in.fasta, err)
		}
		return a.Seq, b.Seq, nil
	}

	a, err := seqfile.Literal("-a", in.a)
	if err != nil {
		return "", "", err
	}
	b, err := seqfile.Literal("-b", in.b)
	if err != nil {
		return "", "", err
	}
	return a.Seq, b.Seq, nil
}

// common carries the flags shared by both commands.
type common struct {
	inputs
	order    string
	strategy string
	dump     bool
	verbose  bool
	version  bool
}

func (c *common) register(fs *flag.FlagSet) {
	c.inputs.register(fs)
	fs.StringVar(&c.order, "order", "high", "tie-break order: high (gap in B first) or low (gap in A first)")
	fs.StringVar(&c.strategy, "strategy", align.Backpointers.String(), "traceback strategy: backpointers or recompute")
	fs.BoolVar(&c.dump, "matrix", false, "also print the score matrix and the recorded moves")
	fs.BoolVar(&c.verbose, "v", false, "log the version and grid size to stderr")
	fs.BoolVar(&c.version, "version", false, "print the version and exit")
}

// resolve validates the shared flags and converts them.
func (c *common) resolve() (align.TieBreak, align.Strategy, error) {
	if !c.version {
		if err := c.inputs.validate(); err != nil {
			return align.TieBreak{}, 0, err
		}
	}
	order, err := parseOrder(c.order)
	if err != nil {
		return align.TieBreak{}, 0, err
	}
	strategy, err := align.ParseStrategy(c.strategy)
	if err != nil {
		return align.TieBreak{}, 0, fmt.Errorf("-strategy: %v: %w", err, errUsage)
	}
	return order, strategy, nil
}

func parseOrder(s string) (align.TieBreak, error) {
	switch s {
	case "high", "":
		return align.HighRoad, nil
	case "low":
		return align.LowRoad, nil
	}
	return align.TieBreak{}, fmt.Errorf("-order %q: want high or low: %w", s, errUsage)
}

type globalConfig struct {
	common
	opts align.GlobalOptions
}

func parseGlobal(argv []string, stderr io.Writer) (globalConfig, error) {
	cfg := globalConfig{opts: align.DefaultGlobalOptions()}

	fs := flag.NewFlagSet("lvalign global", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.common.register(fs)
	fs.Float64Var(&cfg.opts.Match, "match", cfg.opts.Match, "score of equal symbols")
	fs.Float64Var(&cfg.opts.Mismatch, "mismatch", cfg.opts.Mismatch, "score of different symbols")
	fs.Float64Var(&cfg.opts.Gap, "gap", cfg.opts.Gap, "score per gap")
	fs.BoolVar(&cfg.opts.StopAtBoundary, "stop-at-boundary", false, "stop the traceback at the first zero row or column")

	if err := parseFlags(fs, argv); err != nil {
		return cfg, err
	}
	order, strategy, err := cfg.resolve()
	if err != nil {
		return cfg, err
	}
	cfg.opts.Order, cfg.opts.Strategy = order, strategy

	return cfg, nil
}

// defaultOverlapGap suits BLOSUM62 protein scoring.
const defaultOverlapGap = -8

type overlapConfig struct {
	common
	opts  align.OverlapOptions
	table string
	delim string
}

func parseOverlap(argv []string, stderr io.Writer) (overlapConfig, error) {
	cfg := overlapConfig{opts: align.DefaultOverlapOptions()}
	cfg.opts.Gap = defaultOverlapGap

	fs := flag.NewFlagSet("lvalign overlap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.common.register(fs)
	fs.Float64Var(&cfg.opts.Gap, "gap", cfg.opts.Gap, "score per gap")
	fs.StringVar(&cfg.table, "table", "", "substitution table file (default: built-in BLOSUM62)")
	fs.StringVar(&cfg.delim, "delim", "tab", "table cell delimiter: tab, space (runs of blanks) or a single character")

	if err := parseFlags(fs, argv); err != nil {
		return cfg, err
	}
	order, strategy, err := cfg.resolve()
	if err != nil {
		return cfg, err
	}
	cfg.opts.Order, cfg.opts.Strategy = order, strategy
	if _, err := parseDelim(cfg.delim); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (cfg overlapConfig) loadTable() (*subst.Table, error) {
	if cfg.table == "" {
		return subst.BLOSUM62(), nil
	}
	delim, err := parseDelim(cfg.delim)
	if err != nil {
		return nil, err
	}
	return subst.ReadFile(cfg.table, subst.WithDelimiter(delim))
}

func parseDelim(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	case "space", " ":
		return ' ', nil
	}
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) && r != utf8.RuneError {
		return r, nil
	}
	return 0, fmt.Errorf("-delim %q: want tab, space or one character: %w", s, errUsage)
}

// parseFlags parses argv and rejects stray positional arguments.
func parseFlags(fs *flag.FlagSet, argv []string) error {
	if err := fs.Parse(argv); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q: %w", fs.Arg(0), errUsage)
	}
	return nil
}
