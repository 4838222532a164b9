// Package polar - unified dispatcher for the decomposition algorithms.
//
// Decompose is the single entry point: it validates the configuration
// and the input shape, instantiates the requested update strategy, and
// hands it to the shared convergence driver (or, for the SVD method,
// bypasses iteration entirely).
//
// Design principles:
//   - Strict validation first: no matrix work before the configuration
//     is known to be sound.
//   - Strict sentinels: only errors from errors.go; callers match with
//     errors.Is.
//   - One run per call: no retry policy, no shared state between calls.
//     Concurrent decompositions are safe because every run owns its
//     working buffers exclusively.
package polar

import "gonum.org/v1/gonum/mat"

// Decompose computes the polar decomposition of a.
//
// Contracts:
//   - a must be non-nil with positive dimensions.
//   - Iterative algorithms (Newton, NewtonSchulz, Hybrid, Halley, QDWH)
//     require square input; SVD also accepts rectangular input.
//   - The input is never mutated; the iteration works on a private copy.
//
// Errors: ErrInvalidConfig (and its wrapped refinements), ErrShape /
// ErrNonSquare / ErrEmptyMatrix, ErrSingular, ErrSVDFailed. Running
// out of iterations is not an error — the Result reports
// Converged=false and Iterations=MaxIter.
//
// Complexity: per iteration O(n³) for the Newton family and Halley
// (one inversion plus multiplications), one (2n)×n QR factorization
// for QDWH; the SVD path is a single factorization.
func Decompose(a mat.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if a == nil {
		return Result{}, ErrEmptyMatrix
	}
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return Result{}, ErrEmptyMatrix
	}

	if opts.Algorithm == SVD {
		return svdDecompose(a, opts)
	}

	if m != n {
		return Result{}, ErrNonSquare
	}

	return runIterations(newUpdater(opts), a, opts)
}

// newUpdater instantiates the strategy for an already-validated
// configuration.
func newUpdater(opts Options) updater {
	switch opts.Algorithm {
	case Newton:
		return newNewtonUpdater()
	case NewtonSchulz:
		return schulzUpdater{}
	case Hybrid:
		return newHybridUpdater()
	case Halley:
		return halleyUpdater{}
	case QDWH:
		return newQDWHUpdater(opts.Pivot)
	default:
		// Validate rejects everything else before we get here.
		panic("polar: unreachable algorithm")
	}
}
