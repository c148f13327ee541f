package expr

import (
	"math"
	"sort"

	"github.com/katalvlaran/quadra/core"
)

// builtins is the fixed catalog of named functions: the teaching set of
// polynomials, trigonometry, exponentials and rational classics. Domain
// holes are expressed as NaN so the sampler reports them as undefined
// rather than a silent 0.
var builtins = map[string]func(float64) float64{
	// Polynomials.
	"x":               func(x float64) float64 { return x },
	"x^2":             func(x float64) float64 { return x * x },
	"x^3":             func(x float64) float64 { return x * x * x },
	"2*x^3 - 5*x + 1": func(x float64) float64 { return 2*x*x*x - 5*x + 1 },
	"x^4 - 4*x^2":     func(x float64) float64 { return math.Pow(x, 4) - 4*x*x },

	// Trigonometry.
	"sin(x)":          math.Sin,
	"cos(x)":          math.Cos,
	"sin(x) + cos(x)": func(x float64) float64 { return math.Sin(x) + math.Cos(x) },
	"sin(x) * cos(x)": func(x float64) float64 { return math.Sin(x) * math.Cos(x) },
	"x * sin(x)":      func(x float64) float64 { return x * math.Sin(x) },

	// Exponentials and logarithms.
	"exp(x)":    math.Exp,
	"exp(-x^2)": func(x float64) float64 { return math.Exp(-x * x) },
	"log(x)": func(x float64) float64 {
		if x <= 0 {
			return math.NaN() // outside the log domain, not 0
		}

		return math.Log(x)
	},

	// Rational classics.
	"1/x": func(x float64) float64 {
		if x == 0 {
			return math.NaN()
		}

		return 1 / x
	},
	"1/(1 + x^2)": func(x float64) float64 { return 1 / (1 + x*x) },
	"sqrt(x)": func(x float64) float64 {
		if x < 0 {
			return math.NaN()
		}

		return math.Sqrt(x)
	},
	"exp(x) / (1 + x^2)": func(x float64) float64 { return math.Exp(x) / (1 + x*x) },
}

// Builtin looks a catalog function up by its canonical name.
func Builtin(name string) (core.Function, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}

	return core.FuncOf(fn), true
}

// Names returns the catalog's canonical names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
