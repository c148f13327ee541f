package riemann_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/riemann"
)

var (
	square   = core.FuncOf(func(x float64) float64 { return x * x })
	identity = core.FuncOf(func(x float64) float64 { return x })
	one      = core.FuncOf(func(float64) float64 { return 1 })
)

// unit returns the interval [0,1].
func unit(t *testing.T) core.Interval {
	t.Helper()
	iv, err := core.NewInterval(0, 1)
	require.NoError(t, err)

	return iv
}

// TestApproximate_InputContract covers the three hard input errors.
func TestApproximate_InputContract(t *testing.T) {
	iv := unit(t)

	_, err := riemann.Approximate(nil, iv, 10, core.Left)
	assert.ErrorIs(t, err, core.ErrNilFunction, "nil function")

	_, err = riemann.Approximate(square, iv, 0, core.Left)
	assert.ErrorIs(t, err, riemann.ErrBadSubdivisions, "n = 0")

	_, err = riemann.Approximate(square, iv, -5, core.Left)
	assert.ErrorIs(t, err, riemann.ErrBadSubdivisions, "negative n")

	_, err = riemann.Approximate(square, iv, 10, core.Method(99))
	assert.ErrorIs(t, err, core.ErrUnknownMethod, "unknown rule")
}

// TestApproximate_ConstantIsExact: for f(x)=1 every rule gives b-a for
// any n (up to the last-bit rounding of summing Δx n times).
func TestApproximate_ConstantIsExact(t *testing.T) {
	iv, err := core.NewInterval(-2, 5)
	require.NoError(t, err)

	for _, m := range []core.Method{core.Left, core.Right, core.Midpoint, core.Trapezoid} {
		for _, n := range []int{1, 2, 7, 100} {
			res, err := riemann.Approximate(one, iv, n, m)
			require.NoError(t, err, "method=%s n=%d", m, n)
			assert.InDelta(t, iv.Width(), res.Value, 1e-12, "method=%s n=%d", m, n)
			assert.Equal(t, m, res.Method)
			assert.Equal(t, n, res.N)
		}
	}
}

// TestApproximate_KnownSums pins the closed-form sums for f(x)=x on
// [0,1] with n=4 — small enough to verify by hand.
func TestApproximate_KnownSums(t *testing.T) {
	iv := unit(t)

	// left:   (0 + 0.25 + 0.5 + 0.75) * 0.25  = 0.375
	// right:  (0.25 + 0.5 + 0.75 + 1) * 0.25  = 0.625
	// mid:    (0.125+0.375+0.625+0.875)*0.25  = 0.5
	// trap:   mean of left and right          = 0.5
	for m, want := range map[core.Method]float64{
		core.Left:      0.375,
		core.Right:     0.625,
		core.Midpoint:  0.5,
		core.Trapezoid: 0.5,
	} {
		res, err := riemann.Approximate(identity, iv, 4, m)
		require.NoError(t, err, "method=%s", m)
		assert.InDelta(t, want, res.Value, 1e-15, "method=%s", m)
	}
}

// TestApproximate_TrapezoidSingleCell: n=1 must equal
// (f(a)+f(b))/2 * (b-a) exactly — same expression, same rounding.
func TestApproximate_TrapezoidSingleCell(t *testing.T) {
	iv, err := core.NewInterval(1, 3)
	require.NoError(t, err)

	res, err := riemann.Approximate(square, iv, 1, core.Trapezoid)
	require.NoError(t, err)
	assert.Equal(t, (1.0+9.0)/2*2.0, res.Value, "single-cell trapezoid is the two-point formula")
}

// TestApproximate_MidpointConvergence: for x² on [0,1] the midpoint
// error against 1/3 must strictly shrink as n grows.
func TestApproximate_MidpointConvergence(t *testing.T) {
	iv := unit(t)

	prev := math.Inf(1)
	for _, n := range []int{10, 100, 1000} {
		res, err := riemann.Approximate(square, iv, n, core.Midpoint)
		require.NoError(t, err)

		gap := math.Abs(res.Value - 1.0/3.0)
		assert.Less(t, gap, prev, "error must strictly decrease at n=%d", n)
		prev = gap
	}
	assert.Less(t, prev, 1e-6, "n=1000 midpoint should be within 1e-6 of 1/3")
}

// TestApproximate_Idempotent: identical arguments give bit-identical
// results — no hidden mutable state, no unordered accumulation.
func TestApproximate_Idempotent(t *testing.T) {
	f := core.FuncOf(func(x float64) float64 { return math.Sin(x) * math.Exp(x/3) })
	iv, err := core.NewInterval(0, math.Pi)
	require.NoError(t, err)

	first, err := riemann.Approximate(f, iv, 1234, core.Trapezoid)
	require.NoError(t, err)
	second, err := riemann.Approximate(f, iv, 1234, core.Trapezoid)
	require.NoError(t, err)
	assert.Equal(t, first.Value, second.Value, "bit-identical, not merely close")
}

// TestApproximate_UndefinedSample: an undefined point required by the
// rule aborts with the typed sentinel, never a crash or partial sum.
func TestApproximate_UndefinedSample(t *testing.T) {
	iv := unit(t)
	holed := core.FuncOf(func(x float64) float64 {
		if x == 0.5 {
			return math.NaN()
		}

		return x
	})

	// n=2: midpoint samples 0.25 and 0.75 — misses the hole.
	res, err := riemann.Approximate(holed, iv, 2, core.Midpoint)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Value, 1e-15)

	// n=2: left samples 0 and 0.5 — hits the hole.
	_, err = riemann.Approximate(holed, iv, 2, core.Left)
	assert.ErrorIs(t, err, riemann.ErrUndefinedSample)

	// Trapezoid hits 0.5 as a shared edge.
	_, err = riemann.Approximate(holed, iv, 2, core.Trapezoid)
	assert.ErrorIs(t, err, riemann.ErrUndefinedSample)
}

// TestApproximate_PanickingIntegrand: a panic inside f becomes the same
// typed outcome as a NaN.
func TestApproximate_PanickingIntegrand(t *testing.T) {
	f := core.FuncOf(func(x float64) float64 {
		if x > 0.9 {
			panic("integrand blew up")
		}

		return x
	})

	_, err := riemann.Approximate(f, unit(t), 10, core.Right)
	assert.ErrorIs(t, err, riemann.ErrUndefinedSample)
}

// TestApproximate_FiniteWheneverDefined: a defined integrand over the
// whole partition always yields a finite value.
func TestApproximate_FiniteWheneverDefined(t *testing.T) {
	f := core.FuncOf(func(x float64) float64 { return math.Exp(-x * x) })
	iv, err := core.NewInterval(-3, 3)
	require.NoError(t, err)

	for _, m := range []core.Method{core.Left, core.Right, core.Midpoint, core.Trapezoid} {
		res, err := riemann.Approximate(f, iv, 257, m)
		require.NoError(t, err, "method=%s", m)
		assert.False(t, math.IsNaN(res.Value) || math.IsInf(res.Value, 0), "method=%s", m)
	}
}
