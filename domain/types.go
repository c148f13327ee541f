package domain

import (
	"errors"

	"github.com/katalvlaran/quadra/core"
)

// ErrBadOptions indicates an Options field outside its documented range.
var ErrBadOptions = errors.New("domain: invalid validator options")

// Stage identifies which layer of the screen produced a verdict.
type Stage int

const (
	// StageNone means no layer tripped: the verdict is valid.
	StageNone Stage = iota

	// StageEndpoints — an interval endpoint was undefined.
	StageEndpoints

	// StageGrid — an undefined sample on the dense uniform grid.
	StageGrid

	// StageGapRefine — an undefined sample inside a suspicious gap.
	StageGapRefine

	// StageSpecial — an undefined sample at a special point or its
	// ±Tolerance probes.
	StageSpecial
)

// stageNames maps Stage values to their diagnostic names.
var stageNames = [...]string{"none", "endpoints", "grid", "gap-refine", "special-points"}

// String returns the diagnostic stage name.
func (s Stage) String() string {
	if s < StageNone || int(s) >= len(stageNames) {
		return "unknown"
	}

	return stageNames[s]
}

// Verdict is the outcome of Validate. When Valid is false, Offending holds
// the first undefined sample encountered and Stage names the layer that
// found it; when Valid is true both carry zero values.
type Verdict struct {
	Valid     bool
	Offending core.SamplePoint
	Stage     Stage
}

// Options tunes the domain screen. Construct via DefaultOptions and
// override fields as needed.
//
// Fields:
//   - Tolerance     — offset for the ±probes around special points; must be > 0.
//   - GridSamples   — uniform samples across [A,B] in stage 2; must be ≥ 3.
//   - RefineSamples — dense samples inside each suspicious gap; must be ≥ 2.
//   - GapSigma      — stddev multiplier of the suspicious-gap threshold
//     (mean + GapSigma·stddev of consecutive differences); must be > 0.
type Options struct {
	Tolerance     float64
	GridSamples   int
	RefineSamples int
	GapSigma      float64
}

// Default screen parameters.
const (
	// DefaultTolerance is the probe offset around special points.
	DefaultTolerance = 1e-6

	// DefaultGridSamples is the dense uniform sample count.
	DefaultGridSamples = 1000

	// DefaultRefineSamples is the per-gap refinement sample count.
	DefaultRefineSamples = 100

	// DefaultGapSigma keeps the classic mean+3σ outlier rule.
	DefaultGapSigma = 3.0
)

// DefaultOptions returns the canonical screen configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		GridSamples:   DefaultGridSamples,
		RefineSamples: DefaultRefineSamples,
		GapSigma:      DefaultGapSigma,
	}
}

// validate checks field ranges; only sentinel-wrapped errors escape.
func (o Options) validate() error {
	switch {
	case !(o.Tolerance > 0): // rejects NaN too
		return ErrBadOptions
	case o.GridSamples < 3:
		return ErrBadOptions
	case o.RefineSamples < 2:
		return ErrBadOptions
	case !(o.GapSigma > 0):
		return ErrBadOptions
	}

	return nil
}
