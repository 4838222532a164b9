// Package polar: sentinel error set.
// All public entry points return these sentinels and tests match them
// via errors.Is. Configuration sentinels wrap ErrInvalidConfig so that
// callers may catch the whole class with a single errors.Is check.

package polar

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the umbrella for every configuration defect.
// It is reported before any matrix work starts.
var ErrInvalidConfig = errors.New("polar: invalid configuration")

var (
	// ErrInvalidMaxIter indicates MaxIter ≤ 1. A single iteration can never
	// produce a meaningful relative-change signal.
	ErrInvalidMaxIter = fmt.Errorf("%w: maxiter must exceed 1", ErrInvalidConfig)

	// ErrInvalidTolerance indicates Tol ≤ 0 (or NaN).
	ErrInvalidTolerance = fmt.Errorf("%w: tolerance must be positive", ErrInvalidConfig)

	// ErrUnknownAlgorithm indicates an Algorithm value outside the
	// supported set.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrInvalidConfig)
)

// ErrShape is the umbrella for unsupported input shapes.
var ErrShape = errors.New("polar: unsupported matrix shape")

var (
	// ErrNonSquare is returned when a Newton-family or QDWH algorithm
	// receives a rectangular matrix. Only the SVD path handles m ≠ n.
	ErrNonSquare = fmt.Errorf("%w: square input required", ErrShape)

	// ErrEmptyMatrix is returned when the input has a zero dimension.
	ErrEmptyMatrix = fmt.Errorf("%w: empty input", ErrShape)
)

// ErrSingular is returned when an inversion-based step encounters a
// numerically singular iterate, or when QDWH cannot normalize a zero
// input.
var ErrSingular = errors.New("polar: singular iterate")

// ErrSVDFailed is returned when the backend SVD routine does not
// converge. Rare in practice for finite input.
var ErrSVDFailed = errors.New("polar: svd factorization failed")
