// Package domain - the layered validity screen.
//
// Design principles:
//   - Deterministic: probe order is fixed (endpoints → grid → refinement
//     → special points, ascending within each layer), so the reported
//     offending point is stable across runs.
//   - Fail-closed: every undefined sample, wherever it appears, turns
//     into an invalid Verdict. No evaluation fault ever escapes.
//   - Short-circuit: sampling stops at the first offending point.
package domain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/quadra/core"
)

// rationalDenomMax bounds the j/i special-point family: every rational
// j/i with 1 ≤ i ≤ rationalDenomMax and 0 ≤ j ≤ i is probed when inside
// the interval.
const rationalDenomMax = 20

// Validate screens [iv.A, iv.B] for points where f is undefined.
//
// The screen runs four layers in order and stops at the first undefined
// sample (see the package doc for the rationale of each layer). A nil f
// or out-of-range Options is an input-contract error; everything else —
// including panics inside f — is folded into the Verdict.
//
// Complexity: O(GridSamples + gaps·RefineSamples) evaluations plus a
// fixed special-point pass.
func Validate(f core.Function, iv core.Interval, opts Options) (Verdict, error) {
	if err := opts.validate(); err != nil {
		return Verdict{}, err
	}
	if f == nil {
		return Verdict{}, core.ErrNilFunction
	}

	// Stage 1: endpoints. Cheapest screen, most common failure site.
	for _, x := range [2]float64{iv.A, iv.B} {
		if sp := core.Sample(f, x); !sp.Defined {
			return invalid(sp, StageEndpoints), nil
		}
	}

	// Stage 2: dense uniform grid. Values are retained for stage 3.
	grid := floats.Span(make([]float64, opts.GridSamples), iv.A, iv.B)
	values := make([]float64, len(grid))
	for i, x := range grid {
		sp := core.Sample(f, x)
		if !sp.Defined {
			return invalid(sp, StageGrid), nil
		}
		values[i] = sp.Value
	}

	// Stage 3: statistical gap refinement. A consecutive difference far
	// above the bulk (mean + GapSigma·stddev) marks a cell that may
	// straddle a singularity; re-sample it densely.
	diffs := make([]float64, len(values)-1)
	for i := range diffs {
		diffs[i] = math.Abs(values[i+1] - values[i])
	}
	threshold := stat.Mean(diffs, nil) + opts.GapSigma*stat.StdDev(diffs, nil)
	refined := make([]float64, opts.RefineSamples)
	for i, d := range diffs {
		if !(d > threshold) { // negated so a NaN threshold refines nothing
			continue
		}
		for _, x := range floats.Span(refined, grid[i], grid[i+1]) {
			if sp := core.Sample(f, x); !sp.Defined {
				return invalid(sp, StageGapRefine), nil
			}
		}
	}

	// Stage 4: special points — the denominator-zero and log-domain
	// sites a uniform grid straddles without landing on. Each point is
	// probed exactly, then at ±Tolerance when the probe stays strictly
	// inside the interval.
	for _, p := range specialPoints(iv) {
		if sp := core.Sample(f, p); !sp.Defined {
			return invalid(sp, StageSpecial), nil
		}
		if lo := p - opts.Tolerance; lo > iv.A {
			if sp := core.Sample(f, lo); !sp.Defined {
				return invalid(sp, StageSpecial), nil
			}
		}
		if hi := p + opts.Tolerance; hi < iv.B {
			if sp := core.Sample(f, hi); !sp.Defined {
				return invalid(sp, StageSpecial), nil
			}
		}
	}

	return Verdict{Valid: true}, nil
}

// invalid packs an offending sample into a fail verdict.
func invalid(sp core.SamplePoint, st Stage) Verdict {
	return Verdict{Valid: false, Offending: sp, Stage: st}
}

// specialPoints returns the deduplicated, ascending set of singularity-
// prone points inside [iv.A, iv.B]: every integer, every rational j/i
// for i in 1..rationalDenomMax and j in 0..i, and the constants π, e,
// √2, √3.
func specialPoints(iv core.Interval) []float64 {
	seen := make(map[float64]struct{})

	add := func(p float64) {
		if iv.Contains(p) {
			seen[p] = struct{}{}
		}
	}

	// Integers inside the interval. Above 2^53 the float64 spacing is
	// ≥ 2 and p+1 stops advancing; every representable value there is
	// already an integer, so stop once the increment is a no-op instead
	// of spinning on it.
	for p := math.Ceil(iv.A); p <= iv.B; p++ {
		add(p)
		if p+1 == p {
			break
		}
	}

	// Small rationals j/i in [0,1].
	for i := 1; i <= rationalDenomMax; i++ {
		for j := 0; j <= i; j++ {
			add(float64(j) / float64(i))
		}
	}

	// Fixed irrational constants with classic domain trouble.
	for _, p := range [...]float64{math.Pi, math.E, math.Sqrt2, math.Sqrt(3)} {
		add(p)
	}

	points := make([]float64, 0, len(seen))
	for p := range seen {
		points = append(points, p)
	}
	sort.Float64s(points) // deterministic probe order

	return points
}
