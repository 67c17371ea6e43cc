package life

import (
	"testing"

	"neon-life/internal/core"
)

func soupLayout(rows, cols int, density float64, seed int64) [][]bool {
	rng := core.NewRNG(seed).Source()
	layout := emptyLayout(rows, cols)
	for r := range layout {
		core.FillSoup(rng, layout[r], density)
	}
	return layout
}

func benchmarkStep(b *testing.B, rows, cols int, density float64) {
	layout := soupLayout(rows, cols, density, 42)
	g := NewWithConfig(Config{Rows: rows, Cols: cols, MaxBackups: 0})
	g.ReplaceLayout(layout)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func BenchmarkStep_60x80_Soup7(b *testing.B)    { benchmarkStep(b, 60, 80, 0.07) }
func BenchmarkStep_200x266_Soup7(b *testing.B)  { benchmarkStep(b, 200, 266, 0.07) }
func BenchmarkStep_200x266_Soup30(b *testing.B) { benchmarkStep(b, 200, 266, 0.30) }

func benchmarkNaive(b *testing.B, rows, cols int, density float64) {
	layout := soupLayout(rows, cols, density, 42)
	n := NewNaive(rows, cols)
	for r := range layout {
		copy(n.Values()[r*cols:(r+1)*cols], layout[r])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Step()
	}
}

func BenchmarkNaiveStep_60x80_Soup7(b *testing.B)   { benchmarkNaive(b, 60, 80, 0.07) }
func BenchmarkNaiveStep_200x266_Soup7(b *testing.B) { benchmarkNaive(b, 200, 266, 0.07) }

func BenchmarkSnapshot_200x266(b *testing.B) {
	g := NewWithConfig(Config{Rows: 200, Cols: 266, MaxBackups: 4})
	g.ReplaceLayout(soupLayout(200, 266, 0.30, 42))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.snapshot()
	}
}
