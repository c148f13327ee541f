package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/quadra/core"
)

var (
	// ErrEmptyExpression indicates blank source was given to Compile.
	ErrEmptyExpression = errors.New("expr: expression must be non-empty")

	// ErrNotNumeric indicates an expression produced a non-float value.
	ErrNotNumeric = errors.New("expr: expression did not evaluate to a number")
)

// baseEnv builds the evaluation namespace: the variable x plus the same
// math vocabulary the classic calculator exposed. A fresh map per call
// keeps Evaluate safe for concurrent use across requests.
func baseEnv(x float64) map[string]any {
	return map[string]any{
		"x":     x,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"exp":   math.Exp,
		"log":   math.Log,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
		"abs":   math.Abs,
		"pow":   math.Pow,
		"pi":    math.Pi,
		"e":     math.E,
	}
}

// compiled is an expression-backed Function. Immutable after Compile.
type compiled struct {
	src  string
	prog *vm.Program
}

// Compile parses and type-checks src against the math namespace and
// returns it as a core.Function. The source is compiled exactly once;
// Evaluate only runs the program.
//
// Errors: ErrEmptyExpression for blank input, or the compiler's own
// error (wrapped) for malformed source.
func Compile(src string) (core.Function, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptyExpression
	}

	prog, err := exprlang.Compile(src, exprlang.Env(baseEnv(0)), exprlang.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("expr: compile %q: %w", src, err)
	}

	return &compiled{src: src, prog: prog}, nil
}

// Evaluate runs the compiled program at x. Runtime faults come back as
// errors; domain trouble inside the math functions comes back as NaN.
// Either way core.Sample turns the outcome into the undefined marker.
func (c *compiled) Evaluate(x float64) (float64, error) {
	out, err := exprlang.Run(c.prog, baseEnv(x))
	if err != nil {
		return 0, fmt.Errorf("expr: eval %q at x=%g: %w", c.src, x, err)
	}

	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %q gave %T", ErrNotNumeric, c.src, out)
	}

	return v, nil
}

// String renders the function the way it was written.
func (c *compiled) String() string { return "f(x) = " + c.src }
