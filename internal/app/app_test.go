package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvalign/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGlobal(t *testing.T) {
	code, out, stderr := run(t, "global", "-a", "GATTACA", "-b", "GCATGCU", "-gap", "-1")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "G-ATTACA\nGCATG-CU\nscore: 0\n", out)
	assert.Empty(t, stderr)
}

func TestGlobal_StopAtBoundaryAndOrder(t *testing.T) {
	code, out, _ := run(t, "global", "-a", "ACGTACGT", "-b", "TAC", "-stop-at-boundary")
	require.Equal(t, 0, code)
	assert.Equal(t, "TACGT\nTAC--\nscore: -7\n", out)

	code, out, _ = run(t, "global", "-a", "A", "-b", "C", "-mismatch", "-2", "-gap", "-1", "-order", "low", "-strategy", "recompute")
	require.Equal(t, 0, code)
	assert.Equal(t, "A-\n-C\nscore: -2\n", out)
}

func TestGlobal_MatrixDump(t *testing.T) {
	code, out, _ := run(t, "global", "-a", "A", "-b", "C", "-mismatch", "-2", "-gap", "-1", "-matrix")
	require.Equal(t, 0, code)
	assert.Equal(t, "-A\nC-\nscore: -2\n\n[0, -1]\n[-1, -2]\n\n× ←\n↑ ↑\n", out)
}

func TestOverlap_DefaultTable(t *testing.T) {
	code, out, stderr := run(t, "overlap", "-a", "PAWHEAE", "-b", "HEAGAWGHEE")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "---PAW-HEAE\nHEAGAWGHEE-\nscore: 17\n", out)
}

func TestOverlap_FastaInput(t *testing.T) {
	fa := writeFile(t, "pair.fa", ">a\nMKVLAT\n>b\nLATQQ\n")
	code, out, stderr := run(t, "overlap", "-fasta", fa)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "MKVLAT--\n---LATQQ\nscore: 13\n", out)
}

func TestOverlap_TableFile(t *testing.T) {
	tbl := writeFile(t, "dna.txt", `# identity
  A  C  G  T
A 1 -1 -1 -1
C -1 1 -1 -1
G -1 -1 1 -1
T -1 -1 -1 1
`)
	code, out, stderr := run(t, "overlap", "-a", "ACGTTT", "-b", "TTTGCA", "-gap", "-2", "-table", tbl, "-delim", "space")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "ACGTTT---\n---TTTGCA\nscore: 3\n", out)
}

func TestOverlap_Failures(t *testing.T) {
	code, _, stderr := run(t, "overlap", "-a", "pawheae", "-b", "HEAGAWGHEE")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing substitution pair")

	code, _, stderr = run(t, "overlap", "-a", "C", "-b", "W")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no overlap found")

	code, _, stderr = run(t, "overlap", "-a", "A", "-b", "A", "-table", filepath.Join(t.TempDir(), "none.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "lvalign: ")
}

func TestVerbose(t *testing.T) {
	code, out, stderr := run(t, "global", "-a", "GATTACA", "-b", "GCATGCU", "-v")
	require.Equal(t, 0, code)
	assert.NotEmpty(t, out)
	assert.Contains(t, stderr, "lvalign: version "+app.Version)
	assert.Contains(t, stderr, "grid 8x8, 64 cells, ~576 B")

	code, _, stderr = run(t, "overlap", "-a", "PAWHEAE", "-b", "HEAGAWGHEE", "-v")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "table 24x24 symbols, scores -4..11")
	assert.NotContains(t, stderr, "asymmetric")
}

func TestVersion(t *testing.T) {
	for _, argv := range [][]string{{"version"}, {"-version"}, {"global", "-version"}, {"overlap", "-version"}} {
		code, out, _ := run(t, argv...)
		assert.Equal(t, 0, code, argv)
		assert.Equal(t, "lvalign version "+app.Version+"\n", out, argv)
	}
}

func TestUsageErrors(t *testing.T) {
	fa := writeFile(t, "pair.fa", ">a\nAC\n>b\nAC\n")
	tests := []struct {
		name string
		argv []string
	}{
		{"no command", nil},
		{"unknown command", []string{"local"}},
		{"missing b", []string{"global", "-a", "ACGT"}},
		{"fasta and literal", []string{"global", "-fasta", fa, "-a", "AC"}},
		{"bad strategy", []string{"global", "-a", "A", "-b", "A", "-strategy", "guess"}},
		{"bad order", []string{"overlap", "-a", "A", "-b", "A", "-order", "middle"}},
		{"bad delim", []string{"overlap", "-a", "A", "-b", "A", "-delim", "ab"}},
		{"nan gap", []string{"global", "-a", "A", "-b", "A", "-gap", "NaN"}},
		{"unknown flag", []string{"global", "-a", "A", "-b", "A", "-local"}},
		{"stray argument", []string{"global", "-a", "A", "-b", "A", "extra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, stderr := run(t, tc.argv...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "usage: lvalign")

	code, _, stderr := run(t, "global", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "-stop-at-boundary")
}
