// Package core - shared primitive types and input-contract sentinels.
//
// Design principles:
//   - Deterministic, side-effect free constructors and getters.
//   - No logging, no panics on user input - only sentinel errors below.
//   - Zero third-party imports: this is the leaf of the module graph.
package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInterval indicates an interval where a >= b.
	// The caller must fix the bounds; they are never auto-swapped.
	ErrInvalidInterval = errors.New("core: interval requires a < b")

	// ErrUnknownMethod indicates an unrecognized Riemann sampling rule.
	ErrUnknownMethod = errors.New("core: unknown approximation method")

	// ErrNilFunction indicates a nil Function capability was supplied.
	ErrNilFunction = errors.New("core: function must be non-nil")
)

// Function is the opaque capability every quadra algorithm consumes.
// A Function may be backed by a closure, a compiled expression or a
// lookup table; the core never inspects the representation.
//
// Evaluate reports a point where the function is undefined by returning
// a non-nil error, NaN or ±Inf — all three are equivalent to Sample.
type Function interface {
	Evaluate(x float64) (float64, error)
}

// funcAdapter lifts a plain func(float64) float64 into a Function.
type funcAdapter func(float64) float64

func (fn funcAdapter) Evaluate(x float64) (float64, error) { return fn(x), nil }

// FuncOf adapts an infallible closure into a Function.
// Undefined points must be reported as NaN or ±Inf by the closure.
func FuncOf(fn func(float64) float64) Function { return funcAdapter(fn) }

// funcEAdapter lifts an error-returning closure into a Function.
type funcEAdapter func(float64) (float64, error)

func (fn funcEAdapter) Evaluate(x float64) (float64, error) { return fn(x) }

// FuncE adapts an error-returning closure into a Function.
func FuncE(fn func(float64) (float64, error)) Function { return funcEAdapter(fn) }

// Interval is an immutable closed interval [A, B] with the invariant A < B.
// Construct via NewInterval; a zero Interval is not valid.
type Interval struct {
	A float64
	B float64
}

// NewInterval validates a < b and returns the interval.
// Returns ErrInvalidInterval otherwise; bounds are never swapped.
func NewInterval(a, b float64) (Interval, error) {
	if !(a < b) { // also rejects NaN bounds
		return Interval{}, fmt.Errorf("%w: got [%g, %g]", ErrInvalidInterval, a, b)
	}

	return Interval{A: a, B: b}, nil
}

// Width returns B - A. Positive for every constructed Interval.
func (iv Interval) Width() float64 { return iv.B - iv.A }

// Contains reports whether x lies inside [A, B] (inclusive).
func (iv Interval) Contains(x float64) bool { return iv.A <= x && x <= iv.B }

// SamplePoint is one evaluation outcome: the probe coordinate, the value,
// and whether the value is a finite real. When Defined is false the Value
// is NaN — never 0, so an undefined point cannot masquerade as a root.
type SamplePoint struct {
	X       float64
	Value   float64
	Defined bool
}

// Method selects the sampling rule used by riemann.Approximate.
type Method int

const (
	// Left samples at the left edge of each subinterval.
	Left Method = iota

	// Right samples at the right edge of each subinterval.
	Right

	// Midpoint samples at the center of each subinterval.
	Midpoint

	// Trapezoid averages the left- and right-edge samples; the only rule
	// evaluating two points per subinterval.
	Trapezoid
)

// methodNames maps Method values to their canonical wire names.
var methodNames = [...]string{"left", "right", "midpoint", "trapezoid"}

// Valid reports whether m is one of the four defined rules.
func (m Method) Valid() bool { return m >= Left && m <= Trapezoid }

// String returns the canonical lower-case name, or "unknown(n)".
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("unknown(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a case-insensitive rule name to its Method.
// Returns ErrUnknownMethod for anything outside the four canonical names.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}
