// Package polar: Newton–Schulz iteration.

package polar

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// schulzUpdater implements the inverse-free Newton–Schulz step
//
//	Uₖ = ½·Uₖ₋₁·(3I − Uₖ₋₁ᵗ·Uₖ₋₁)
//
// Convergence is guaranteed only when ‖A‖_F < √3; this is a caller
// contract, not re-checked per iteration. When the initial iterate
// violates the bound the driver emits a one-off warning through the
// diagnostics sink and the iteration is left to diverge — the caller
// observes Converged=false.
type schulzUpdater struct{}

func (schulzUpdater) step(u *mat.Dense) error {
	// g = 3I − UᵗU
	var g mat.Dense
	g.Mul(u.T(), u)
	g.Scale(-1, &g)
	addToDiagonal(&g, 3)

	var next mat.Dense
	next.Mul(u, &g)
	u.Scale(0.5, &next)

	return nil
}

func (schulzUpdater) checkInit(u *mat.Dense) string {
	if norm := mat.Norm(u, 2); norm >= schulzNormBound {
		return fmt.Sprintf("polar: newton–schulz needs ‖A‖_F < √3, got %.6g; iteration may diverge", norm)
	}

	return ""
}
