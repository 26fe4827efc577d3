// Package app implements the lvalign command line.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/subst"
)

// Version is reported by -version and the verbose banner.
var Version = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks argument errors; they exit with exitUsage.
var errUsage = errors.New("invalid arguments")

const usageText = `usage: lvalign <command> [flags]

commands:
  global    Needleman-Wunsch global alignment with match/mismatch scoring
  overlap   overlap (semi-global) alignment with a substitution table

Run 'lvalign <command> -h' for the flags of a command.
`

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, runs the selected alignment and writes the result
// to stdout: the aligned A, the aligned B and "score: <g>", one per line.
// Diagnostics go to stderr. The return value is the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()
	logger := log.New(stderr, "lvalign: ", 0)

	if len(argv) == 0 {
		_, _ = io.WriteString(stderr, usageText)
		return exitUsage
	}

	var err error
	switch cmd, rest := argv[0], argv[1:]; cmd {
	case "global":
		err = runGlobal(ctx, rest, outw, stderr, logger)
	case "overlap":
		err = runOverlap(ctx, rest, outw, stderr, logger)
	case "version", "-version", "--version":
		err = printVersion(outw)
	case "help", "-h", "-help", "--help":
		_, err = io.WriteString(outw, usageText)
	default:
		logger.Printf("unknown command %q", cmd)
		_, _ = io.WriteString(stderr, usageText)
		return exitUsage
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		if ferr := outw.Flush(); ferr != nil {
			logger.Print(ferr)
			return exitFailure
		}
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, align.ErrBadOptions):
		logger.Print(err)
		return exitUsage
	default:
		logger.Print(err)
		return exitFailure
	}
}

func runGlobal(ctx context.Context, argv []string, out io.Writer, stderr io.Writer, logger *log.Logger) error {
	cfg, err := parseGlobal(argv, stderr)
	if err != nil {
		return err
	}
	if cfg.version {
		return printVersion(out)
	}
	a, b, err := cfg.inputs.load()
	if err != nil {
		return err
	}
	if cfg.verbose {
		banner(logger, "global", a, b)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res, g, err := align.Global(a, b, cfg.opts)
	if err != nil {
		return err
	}
	return report(out, res, g, cfg.dump)
}

func runOverlap(ctx context.Context, argv []string, out io.Writer, stderr io.Writer, logger *log.Logger) error {
	cfg, err := parseOverlap(argv, stderr)
	if err != nil {
		return err
	}
	if cfg.version {
		return printVersion(out)
	}
	a, b, err := cfg.inputs.load()
	if err != nil {
		return err
	}
	tbl, err := cfg.loadTable()
	if err != nil {
		return err
	}
	if x, y, ok := tbl.Covers(a, b); !ok {
		return fmt.Errorf("table has no score for (%q, %q): %w", x, y, subst.ErrMissingPair)
	}
	if cfg.verbose {
		banner(logger, "overlap", a, b)
		lo, hi := tbl.Bounds()
		logger.Printf("table %dx%d symbols, scores %g..%g", len(tbl.RowSymbols()), len(tbl.ColSymbols()), lo, hi)
		if err := tbl.ValidateSymmetric(matrix.DefaultEpsilon); err != nil {
			logger.Printf("table is asymmetric, A symbols index rows: %v", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res, g, err := align.Overlap(a, b, tbl, cfg.opts)
	if err != nil {
		return err
	}
	return report(out, res, g, cfg.dump)
}

func printVersion(out io.Writer) error {
	_, err := fmt.Fprintf(out, "lvalign version %s\n", Version)
	return err
}

// banner logs the version and the size of the grid about to be filled.
func banner(logger *log.Logger, mode, a, b string) {
	cells := uint64(len(a)+1) * uint64(len(b)+1)
	logger.Printf("version %s, %s alignment", Version, mode)
	logger.Printf("grid %dx%d, %s cells, ~%s",
		len(a)+1, len(b)+1, humanize.Comma(int64(cells)), humanize.Bytes(cells*gridCellBytes))
}

// gridCellBytes is one float64 score plus one recorded move.
const gridCellBytes = 8 + 1

func report(out io.Writer, res align.Result, g *align.Grid, dump bool) error {
	if _, err := fmt.Fprintf(out, "%s\n%s\nscore: %g\n", res.AlignA, res.AlignB, res.Score); err != nil {
		return err
	}
	if !dump {
		return nil
	}
	_, err := fmt.Fprintf(out, "\n%s\n%s", g, g.MovesString())
	return err
}
