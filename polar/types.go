// Package polar: algorithm identifiers, options and the result record.

package polar

import (
	"gonum.org/v1/gonum/mat"
)

// Algorithm selects the update strategy used by Decompose.
type Algorithm int

const (
	// Newton runs the scaled Newton iteration Uₖ = ½(γU + γ⁻¹U⁻ᵗ).
	Newton Algorithm = iota

	// NewtonSchulz runs the inverse-free iteration ½·U·(3I − UᵗU).
	// Guaranteed to converge only when ‖A‖_F < √3; see doc.go.
	NewtonSchulz

	// Hybrid starts with Newton and switches permanently to
	// NewtonSchulz once the iterate is inside its convergence region.
	Hybrid

	// Halley runs U·(3I + UᵗU)·(I + 3·UᵗU)⁻¹.
	Halley

	// QDWH runs the QR-based Dynamically Weighted Halley iteration.
	QDWH

	// SVD constructs U and H directly from a singular value
	// decomposition. Not iterative; MaxIter and Tol are ignored.
	SVD
)

// String returns the lower-case identifier used on CLI and diagnostic
// surfaces.
func (a Algorithm) String() string {
	switch a {
	case Newton:
		return "newton"
	case NewtonSchulz:
		return "schulz"
	case Hybrid:
		return "hybrid"
	case Halley:
		return "halley"
	case QDWH:
		return "qdwh"
	case SVD:
		return "svd"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a textual identifier to an Algorithm.
// Returns ErrUnknownAlgorithm for anything outside the supported set.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "newton":
		return Newton, nil
	case "schulz":
		return NewtonSchulz, nil
	case "hybrid":
		return Hybrid, nil
	case "halley":
		return Halley, nil
	case "qdwh":
		return QDWH, nil
	case "svd":
		return SVD, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Documented defaults (single source of truth).
const (
	// DefaultMaxIter bounds the iteration count of every iterative
	// algorithm.
	DefaultMaxIter = 100

	// DefaultTol is the relative-change convergence tolerance.
	DefaultTol = 1e-6

	// newtonScaleTol is the relative error below which Newton scaling
	// is switched off permanently, preserving quadratic convergence
	// without oscillation.
	newtonScaleTol = 1e-2

	// hybridSwitchTol bounds ‖UᵗU − I‖_F at the Newton→Newton–Schulz
	// crossover. Any value < 1 keeps the switch inside the
	// Newton–Schulz convergence radius; the margin makes the hybrid
	// schedule match plain Newton's iteration count in practice.
	hybridSwitchTol = 0.05

	// schulzNormBound is √3, the Frobenius-norm bound under which
	// Newton–Schulz convergence is guaranteed.
	schulzNormBound = 1.7320508075688772
)

// Options configures Decompose.
//
// Fields:
//   - Algorithm — which update strategy to run (default Newton).
//   - MaxIter   — iteration bound; must exceed 1 (ignored for SVD).
//   - Tol       — relative-change tolerance; must be positive (ignored for SVD).
//   - Verbose   — when true and Reporter is nil, per-iteration
//     diagnostics go to a table writer on standard output.
//   - Pivot     — QDWH only: column pivoting in the stacked QR
//     factorization. Improves backward stability; on by default.
//   - Reporter  — optional diagnostics sink. Setting a Reporter enables
//     reporting regardless of Verbose, which keeps the driver free of
//     console I/O in tests.
type Options struct {
	Algorithm Algorithm
	MaxIter   int
	Tol       float64
	Verbose   bool
	Pivot     bool
	Reporter  Reporter
}

// DefaultOptions returns the documented defaults: Newton, MaxIter=100,
// Tol=1e-6, quiet, pivoting enabled.
func DefaultOptions() Options {
	return Options{
		Algorithm: Newton,
		MaxIter:   DefaultMaxIter,
		Tol:       DefaultTol,
		Pivot:     true,
	}
}

// Validate fails fast on configuration defects, before any matrix
// operation executes. MaxIter and Tol are not inspected for the SVD
// path, which ignores them.
//
// Errors: ErrUnknownAlgorithm, ErrInvalidMaxIter, ErrInvalidTolerance
// (all matching ErrInvalidConfig via errors.Is).
func (o Options) Validate() error {
	switch o.Algorithm {
	case Newton, NewtonSchulz, Hybrid, Halley, QDWH:
		if o.MaxIter <= 1 {
			return ErrInvalidMaxIter
		}
		if !(o.Tol > 0) {
			return ErrInvalidTolerance
		}
		return nil
	case SVD:
		return nil
	default:
		return ErrUnknownAlgorithm
	}
}

// Result is the immutable outcome of a decomposition.
//
// U·H reconstructs the input within the configured tolerance whenever
// Converged is true. H is assembled as the exact symmetrization of
// Uᵗ·A and stored symmetrically, so H.At(i,j) == H.At(j,i) always.
//
// Iterations and Converged are populated by the iterative algorithms
// only; the SVD path leaves them at their zero values (use Iterative
// to tell the cases apart).
type Result struct {
	// U is m×n with (near-)orthonormal columns (m ≥ n) or rows (m < n).
	U *mat.Dense

	// H is the n×n symmetric positive-semidefinite factor.
	H *mat.SymDense

	// Iterations counts completed update steps; zero for SVD.
	Iterations int

	// Converged reports whether the tolerance was met within MaxIter.
	Converged bool

	// Algorithm records which strategy produced this result.
	Algorithm Algorithm
}

// Iterative reports whether Iterations and Converged carry meaning.
func (r Result) Iterative() bool { return r.Algorithm != SVD }
