package quadrature

import (
	"errors"
	"math"
)

var (
	// ErrQuadratureFailed indicates no exact value is available: the
	// integrand was undefined inside the interval or the adaptive
	// refinement did not converge within MaxDepth.
	ErrQuadratureFailed = errors.New("quadrature: adaptive integration failed")

	// ErrBadOptions indicates an Options field outside its documented range.
	ErrBadOptions = errors.New("quadrature: invalid options")
)

// Result is a converged reference value.
type Result struct {
	// Value is the estimated integral.
	Value float64

	// ErrEstimate is the accumulated local error estimate across all
	// accepted panels. An estimate, not a bound.
	ErrEstimate float64
}

// Comparison relates an approximation to a reference value.
// RelError is NaN and RelDefined is false when Exact == 0: relative
// error is mathematically undefined there and must not be divided into
// existence.
type Comparison struct {
	Approx     float64
	Exact      float64
	AbsError   float64
	RelError   float64
	RelDefined bool
}

// Options tunes the adaptive wrapper. Construct via DefaultOptions.
//
// Fields:
//   - AbsTol   — absolute per-panel acceptance tolerance; must be > 0.
//   - RelTol   — relative per-panel acceptance tolerance; must be > 0.
//   - MaxDepth — bisection depth cap; must be ≥ 1.
//   - Order    — Gauss–Legendre node count per panel; must be ≥ 2.
type Options struct {
	AbsTol   float64
	RelTol   float64
	MaxDepth int
	Order    int
}

// Default wrapper parameters.
const (
	DefaultAbsTol   = 1e-10
	DefaultRelTol   = 1e-8
	DefaultMaxDepth = 20
	DefaultOrder    = 15
)

// DefaultOptions returns the canonical wrapper configuration.
func DefaultOptions() Options {
	return Options{
		AbsTol:   DefaultAbsTol,
		RelTol:   DefaultRelTol,
		MaxDepth: DefaultMaxDepth,
		Order:    DefaultOrder,
	}
}

// validate checks field ranges.
func (o Options) validate() error {
	switch {
	case !(o.AbsTol > 0), !(o.RelTol > 0): // rejects NaN too
		return ErrBadOptions
	case o.MaxDepth < 1:
		return ErrBadOptions
	case o.Order < 2:
		return ErrBadOptions
	}

	return nil
}

// Compare computes absolute and relative error of approx against exact.
// The zero-reference case is marked explicitly instead of dividing by 0.
func Compare(approx, exact float64) Comparison {
	c := Comparison{
		Approx:   approx,
		Exact:    exact,
		AbsError: math.Abs(exact - approx),
		RelError: math.NaN(),
	}
	if exact != 0 {
		c.RelError = c.AbsError / math.Abs(exact)
		c.RelDefined = true
	}

	return c
}
