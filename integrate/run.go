// Package integrate - the request dispatcher.
//
// Design principles:
//   - Strict staging: contract checks, then the gate, then computation.
//     A request that fails a stage never reaches the next one.
//   - Only sentinels from this module's packages are returned; context
//     is added with wrapping, never with new error kinds.
package integrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/domain"
	"github.com/katalvlaran/quadra/quadrature"
	"github.com/katalvlaran/quadra/riemann"
)

// Run executes one integration request. See the package doc for the
// pipeline; errors are the sentinels of core, domain, riemann and this
// package. A quadrature failure is not an error: the Outcome reports
// Exact.Defined == false and a nil Comparison.
func Run(req Request, opts Options) (Outcome, error) {
	// Stage 1: input contract.
	if req.F == nil {
		return Outcome{}, core.ErrNilFunction
	}
	iv, err := core.NewInterval(req.A, req.B)
	if err != nil {
		return Outcome{}, err
	}
	if req.N < 1 {
		return Outcome{}, fmt.Errorf("%w: got %d", riemann.ErrBadSubdivisions, req.N)
	}
	if !req.Method.Valid() {
		return Outcome{}, fmt.Errorf("%w: %d", core.ErrUnknownMethod, int(req.Method))
	}

	// Stage 2: domain gate. Fail-fast: no approximation past this point
	// if the screen finds an undefined sample.
	verdict, err := domain.Validate(req.F, iv, opts.Domain)
	if err != nil {
		return Outcome{}, err
	}
	if !verdict.Valid {
		return Outcome{}, fmt.Errorf("%w: x=%g (stage %s)",
			ErrDomainViolation, verdict.Offending.X, verdict.Stage)
	}

	// Stage 3: approximation.
	approx, err := riemann.Approximate(req.F, iv, req.N, req.Method)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Approximation: approx,
		Exact:         ExactValue{Value: math.NaN()},
	}

	// Stage 4: optional exact reference. Quadrature failure is folded
	// into the Outcome — "no exact value available" is a valid answer.
	if req.WithExact {
		exact, qerr := quadrature.Exact(req.F, iv, opts.Quadrature)
		switch {
		case qerr == nil:
			out.Exact = ExactValue{Value: exact.Value, Defined: true}
			cmp := quadrature.Compare(approx.Value, exact.Value)
			out.Comparison = &cmp
		case errors.Is(qerr, quadrature.ErrQuadratureFailed):
			// Leave Exact undefined; the approximation still stands.
		default:
			return Outcome{}, qerr // option misconfiguration
		}
	}

	return out, nil
}
