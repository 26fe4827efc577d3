package seqfile_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvalign/internal/seqfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pair = `>first some description
PAWH
EAE
>second
HEAGAWGHEE
>third
ACGT
`

func TestRead(t *testing.T) {
	recs, err := seqfile.Read(strings.NewReader(pair))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, seqfile.Record{ID: "first", Seq: "PAWHEAE"}, recs[0])
	assert.Equal(t, seqfile.Record{ID: "second", Seq: "HEAGAWGHEE"}, recs[1])
	assert.Equal(t, "ACGT", recs[2].Seq)
}

func TestPair(t *testing.T) {
	recs, err := seqfile.Read(strings.NewReader(pair))
	require.NoError(t, err)

	a, b, err := seqfile.Pair(recs)
	require.NoError(t, err)
	assert.Equal(t, "PAWHEAE", a.Seq)
	assert.Equal(t, "HEAGAWGHEE", b.Seq)

	_, _, err = seqfile.Pair(recs[:1])
	assert.ErrorIs(t, err, seqfile.ErrTooFewRecords)

	_, _, err = seqfile.Pair([]seqfile.Record{{ID: "x", Seq: "A"}, {ID: "y"}})
	assert.ErrorIs(t, err, seqfile.ErrEmptySequence)
}

func TestLiteral(t *testing.T) {
	r, err := seqfile.Literal("a", "  GATTACA\n")
	require.NoError(t, err)
	assert.Equal(t, seqfile.Record{ID: "a", Seq: "GATTACA"}, r)

	_, err = seqfile.Literal("b", " ")
	assert.ErrorIs(t, err, seqfile.ErrEmptySequence)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "pair.fa")
	require.NoError(t, os.WriteFile(plain, []byte(pair), 0o600))

	gz := filepath.Join(dir, "pair.fa.gz")
	fh, err := os.Create(gz)
	require.NoError(t, err)
	zw := gzip.NewWriter(fh)
	_, err = zw.Write([]byte(pair))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())

	for _, path := range []string{plain, gz} {
		recs, err := seqfile.ReadFile(path)
		require.NoError(t, err, path)
		require.Len(t, recs, 3, path)
		assert.Equal(t, "HEAGAWGHEE", recs[1].Seq, path)
	}

	_, err = seqfile.ReadFile(filepath.Join(dir, "missing.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
