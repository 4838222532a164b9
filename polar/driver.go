// Package polar: the shared convergence driver.
//
// Every iterative algorithm is an updater consumed by one loop: save
// the previous iterate, apply the strategy's step in place, measure
// the relative change and the deviation from orthonormality, report,
// and stop once the change falls to the tolerance. The final H is
// always derived from the last iterate, never iterated directly.

package polar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// updater advances the current iterate by one step, in place.
// Implementations own any per-iteration scalar state (QDWH's lower
// bound, the hybrid mode flag) and thread it through successive calls.
type updater interface {
	step(u *mat.Dense) error
}

// initializer is an optional updater hook run once on the initial
// iterate, before the loop. QDWH uses it to normalize U₀ and seed its
// singular-value lower bound.
type initializer interface {
	init(u *mat.Dense) error
}

// precondition is an optional updater hook that inspects the initial
// iterate and returns a human-readable warning when a convergence
// precondition does not hold (empty string otherwise). Violations are
// reported, not enforced: the loop still runs and non-convergence is
// surfaced through Result.Converged.
type precondition interface {
	checkInit(u *mat.Dense) string
}

// observer is an optional updater hook fed the relative error after
// each iteration. The scaled Newton strategy uses it to retire its
// scaling factor near the solution.
type observer interface {
	observe(relerr float64)
}

// runIterations drives up over a copy of a until convergence or
// MaxIter exhaustion, then assembles H and packages the Result.
// The caller has already validated opts and the shape of a.
func runIterations(up updater, a mat.Matrix, opts Options) (Result, error) {
	rep := opts.Reporter
	if rep == nil && opts.Verbose {
		rep = newStdoutReporter()
	}

	u := mat.DenseCopyOf(a)
	if ini, ok := up.(initializer); ok {
		if err := ini.init(u); err != nil {
			return Result{}, err
		}
	}
	if pre, ok := up.(precondition); ok {
		if msg := pre.checkInit(u); msg != "" {
			if w, ok := rep.(Warner); ok {
				w.Warning(msg)
			}
		}
	}

	m, n := u.Dims()
	prev := mat.NewDense(m, n, nil)

	var (
		iters     int
		converged bool
	)
	for k := 1; k <= opts.MaxIter; k++ {
		prev.Copy(u)
		if err := up.step(u); err != nil {
			return Result{}, err
		}

		relerr := relativeChange(u, prev)
		objective := orthoDistance(u)
		objective *= objective

		if rep != nil {
			rep.Report(k, relerr, objective)
		}
		if ob, ok := up.(observer); ok {
			ob.observe(relerr)
		}

		iters = k
		if relerr <= opts.Tol {
			converged = true
			break
		}
	}

	return Result{
		U:          u,
		H:          assembleH(u, a),
		Iterations: iters,
		Converged:  converged,
		Algorithm:  opts.Algorithm,
	}, nil
}

// relativeChange returns ‖u − prev‖_F / ‖u‖_F, the convergence signal.
// A zero denominator (the all-zero iterate) yields zero: the iteration
// is stationary and must not spin on NaN.
func relativeChange(u, prev *mat.Dense) float64 {
	denom := mat.Norm(u, 2)
	if denom == 0 {
		return 0
	}
	var diff mat.Dense
	diff.Sub(u, prev)

	return mat.Norm(&diff, 2) / denom
}

// orthoDistance returns ‖UᵗU − I‖_F, the deviation of u from exact
// orthonormality. Diagnostic only; never a stop condition.
func orthoDistance(u *mat.Dense) float64 {
	_, n := u.Dims()
	var g mat.Dense
	g.Mul(u.T(), u)
	for i := 0; i < n; i++ {
		g.Set(i, i, g.At(i, i)-1)
	}

	return mat.Norm(&g, 2)
}

// assembleH builds H = sym(Uᵗ·A). The symmetrization (H + Hᵗ)/2 is
// folded into the symmetric storage write, so the returned factor is
// exactly symmetric regardless of floating-point drift accumulated
// during iteration.
func assembleH(u *mat.Dense, a mat.Matrix) *mat.SymDense {
	_, n := u.Dims()
	var h mat.Dense
	h.Mul(u.T(), a)

	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, (h.At(i, j)+h.At(j, i))/2)
		}
	}

	return s
}

// addToDiagonal adds v to every diagonal entry of the square matrix g.
func addToDiagonal(g *mat.Dense, v float64) {
	n, _ := g.Dims()
	for i := 0; i < n; i++ {
		g.Set(i, i, g.At(i, i)+v)
	}
}

// invertIterate inverts u into dst, mapping a numerically singular
// iterate to ErrSingular. Near-singular (but finite) input proceeds
// with the computed inverse: the iteration itself decides whether it
// recovers.
func invertIterate(dst *mat.Dense, u mat.Matrix) error {
	if err := dst.Inverse(u); err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 1) {
			return ErrSingular
		}
	}

	return nil
}
