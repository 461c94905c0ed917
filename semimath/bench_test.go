package semimath_test

import (
	"testing"

	"github.com/heterolab/bandstruct/semimath"
)

// BenchmarkVarshni measures the bare gap evaluation; it should stay
// allocation-free.
func BenchmarkVarshni(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = semimath.Varshni(300.0, 1.519, 0.5405e-3, 204.0)
	}
	_ = sink
}

// BenchmarkFermiDiracHalf_NonDegenerate exercises the exponential branch.
func BenchmarkFermiDiracHalf_NonDegenerate(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = semimath.FermiDiracHalf(-1.5)
	}
	_ = sink
}

// BenchmarkFermiDiracHalf_Degenerate exercises the power branch.
func BenchmarkFermiDiracHalf_Degenerate(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = semimath.FermiDiracHalf(8.0)
	}
	_ = sink
}
