package domain_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/domain"
)

// benchmarkValidate runs the screen with a given grid density.
// It resets the timer before entering the loop and fails on option errors.
func benchmarkValidate(b *testing.B, gridSamples int) {
	f := core.FuncOf(func(x float64) float64 { return math.Sin(x) * math.Exp(-x/10) })
	iv, err := core.NewInterval(0, 10)
	if err != nil {
		b.Fatalf("interval: %v", err)
	}

	opts := domain.DefaultOptions()
	opts.GridSamples = gridSamples

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = domain.Validate(f, iv, opts); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}

// BenchmarkValidate_Grid1000 measures the default 1000-point screen.
func BenchmarkValidate_Grid1000(b *testing.B) { benchmarkValidate(b, 1000) }

// BenchmarkValidate_Grid10000 measures a 10x denser screen.
func BenchmarkValidate_Grid10000(b *testing.B) { benchmarkValidate(b, 10000) }
