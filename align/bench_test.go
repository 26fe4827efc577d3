package align_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/subst"
)

// benchLengths are the sequence lengths to benchmark.
var benchLengths = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkR align.Result
	sinkG *align.Grid
)

func benchSeq(n int, alphabet string, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for k := range b {
		b[k] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func BenchmarkGlobal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		for _, strategy := range []align.Strategy{align.Backpointers, align.Recompute} {
			b.Run(fmt.Sprintf("n=%d/%v", n, strategy), func(b *testing.B) {
				x, y := benchSeq(n, "ACGT", 1337), benchSeq(n, "ACGT", 4242)
				opts := align.DefaultGlobalOptions()
				opts.Strategy = strategy
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					res, g, err := align.Global(x, y, opts)
					if err != nil {
						b.Fatal(err)
					}
					sinkR, sinkG = res, g
				}
			})
		}
	}
}

func BenchmarkOverlap(b *testing.B) {
	b.ReportAllocs()
	const protein = "ARNDCQEGHILKMFPSTWYV"
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchSeq(n, protein, 1337), benchSeq(n, protein, 4242)
			opts := align.DefaultOverlapOptions()
			opts.Gap = -8
			tbl := subst.BLOSUM62()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, g, err := align.Overlap(x, y, tbl, opts)
				if err != nil && err != align.ErrNoOverlap {
					b.Fatal(err)
				}
				sinkR, sinkG = res, g
			}
		})
	}
}
