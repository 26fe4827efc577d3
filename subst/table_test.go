package subst_test

import (
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLabeledOrderedLookup checks that lookups read row a, column b.
func TestNewLabeledOrderedLookup(t *testing.T) {
	tbl, err := subst.NewLabeled([]byte("AC"), []byte("GT"), [][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	v, err := tbl.Score('C', 'G')
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = tbl.Score('G', 'C')
	assert.ErrorIs(t, err, subst.ErrMissingPair, "columns are not row labels")
	assert.True(t, tbl.Has('A', 'T'))
	assert.False(t, tbl.Has('T', 'A'))
	assert.Equal(t, []byte("AC"), tbl.RowSymbols())
	assert.Equal(t, []byte("GT"), tbl.ColSymbols())
}

// TestNewRejectsMalformed covers the construction-time checks.
func TestNewRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		rows   []byte
		cols   []byte
		scores [][]float64
	}{
		{"no labels", nil, []byte("A"), [][]float64{}},
		{"row count", []byte("AB"), []byte("AB"), [][]float64{{1, 2}}},
		{"ragged row", []byte("AB"), []byte("AB"), [][]float64{{1, 2}, {3}}},
		{"duplicate row", []byte("AA"), []byte("AB"), [][]float64{{1, 2}, {3, 4}}},
		{"duplicate col", []byte("AB"), []byte("BB"), [][]float64{{1, 2}, {3, 4}}},
		{"nan cell", []byte("A"), []byte("A"), [][]float64{{nan()}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := subst.NewLabeled(tc.rows, tc.cols, tc.scores)
			require.ErrorIs(t, err, subst.ErrMalformedTable)
		})
	}
}

// TestIdentity mirrors the scalar match/mismatch model.
func TestIdentity(t *testing.T) {
	tbl, err := subst.Identity([]byte("ACGT"), 1, -1)
	require.NoError(t, err)

	for _, a := range []byte("ACGT") {
		for _, b := range []byte("ACGT") {
			v, err := tbl.Score(a, b)
			require.NoError(t, err)
			if a == b {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, -1.0, v)
			}
		}
	}
	require.NoError(t, tbl.ValidateSymmetric(0))

	_, err = tbl.Score('A', 'U')
	assert.ErrorIs(t, err, subst.ErrMissingPair)
}

// TestCovers reports the first undefined pair without scoring anything.
func TestCovers(t *testing.T) {
	tbl, err := subst.Identity([]byte("ACGT"), 1, -1)
	require.NoError(t, err)

	_, _, ok := tbl.Covers("GATTACA", "TTAG")
	assert.True(t, ok)

	x, y, ok := tbl.Covers("GATTACA", "GCAUG")
	assert.False(t, ok)
	assert.Equal(t, byte('G'), x)
	assert.Equal(t, byte('U'), y)

	x, _, ok = tbl.Covers("NAC", "A")
	assert.False(t, ok)
	assert.Equal(t, byte('N'), x)
}

// TestValidateSymmetric flags asymmetric scores and mismatched labels.
func TestValidateSymmetric(t *testing.T) {
	skew, err := subst.New([]byte("AB"), [][]float64{
		{1, 2},
		{5, 1},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, skew.ValidateSymmetric(0), matrix.ErrAsymmetry)

	rect, err := subst.NewLabeled([]byte("AB"), []byte("BA"), [][]float64{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, rect.ValidateSymmetric(0), matrix.ErrDimensionMismatch)
}

// TestBLOSUM62 spot-checks well-known entries of the embedded table.
func TestBLOSUM62(t *testing.T) {
	tbl := subst.BLOSUM62()
	require.Same(t, tbl, subst.BLOSUM62(), "parsed once")
	require.NoError(t, tbl.ValidateSymmetric(0))
	assert.Len(t, tbl.RowSymbols(), 24)

	lo, hi := tbl.Bounds()
	assert.Equal(t, -4.0, lo)
	assert.Equal(t, 11.0, hi)

	cases := []struct {
		a, b byte
		want float64
	}{
		{'W', 'W', 11},
		{'C', 'C', 9},
		{'A', 'A', 4},
		{'H', 'H', 8},
		{'P', 'H', -2},
		{'E', 'E', 5},
		{'A', 'W', -3},
		{'*', '*', 1},
		{'X', '*', -4},
	}
	for _, c := range cases {
		v, err := tbl.Score(c.a, c.b)
		require.NoError(t, err)
		assert.Equalf(t, c.want, v, "BLOSUM62(%c,%c)", c.a, c.b)
	}

	_, err := tbl.Score('a', 'A')
	assert.ErrorIs(t, err, subst.ErrMissingPair, "labels are case sensitive")
}
