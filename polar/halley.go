// Package polar: Halley iteration.

package polar

import "gonum.org/v1/gonum/mat"

// halleyUpdater implements the rational Halley step
//
//	Uₖ = Uₖ₋₁·(3I + Uₖ₋₁ᵗ·Uₖ₋₁)·(I + 3·Uₖ₋₁ᵗ·Uₖ₋₁)⁻¹
//
// No scalar state is carried between iterations. The map is cubically
// convergent once the singular values are near 1, but outside that
// basin progress is slow — ill-conditioned input may take many more
// iterations than Newton or QDWH.
//
// I + 3·UᵗU is symmetric positive definite for any nonsingular
// iterate, so the inversion only fails on degenerate input.
type halleyUpdater struct{}

func (halleyUpdater) step(u *mat.Dense) error {
	var g mat.Dense
	g.Mul(u.T(), u)

	// num = 3I + G, den = I + 3G
	var num, den mat.Dense
	num.CloneFrom(&g)
	addToDiagonal(&num, 3)
	den.Scale(3, &g)
	addToDiagonal(&den, 1)

	var inv mat.Dense
	if err := invertIterate(&inv, &den); err != nil {
		return err
	}

	var t mat.Dense
	t.Mul(u, &num)
	u.Mul(&t, &inv)

	return nil
}
