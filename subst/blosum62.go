package subst

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed blosum62.txt
var blosum62Text string

var blosum62 = sync.OnceValue(func() *Table {
	t, err := Read(strings.NewReader(blosum62Text))
	if err != nil {
		panic("subst: embedded BLOSUM62 is malformed: " + err.Error())
	}
	return t
})

// BLOSUM62 returns the NCBI BLOSUM62 protein table, including the ambiguity
// codes B, Z, X and the stop symbol *. The table is parsed once and shared;
// Tables are immutable, so sharing is safe.
func BLOSUM62() *Table { return blosum62() }
