// Package polar computes the polar decomposition A = U·H of a real
// matrix, where U has orthonormal columns (m ≥ n) or rows (m < n) and
// H is symmetric positive semidefinite.
//
// 🚀 What is a polar decomposition?
//
//	The matrix analogue of z = e^{iθ}·r for complex numbers: U carries
//	the "rotation" of A and H its "stretch".  It is widely used in:
//	  • Orthogonal Procrustes problems & shape analysis
//	  • Continuum mechanics (deformation gradients)
//	  • Matrix sign/square-root computations
//	  • Orthogonalization of drifting rotation matrices
//
// ✨ Algorithm catalogue:
//
//   - Newton       — scaled Newton iteration; quadratic convergence,
//     one inversion per step, automatic scaling decay near the solution
//   - NewtonSchulz — inverse-free ½·U·(3I − UᵗU); requires ‖A‖_F < √3
//   - Hybrid       — Newton until the iterate enters the Newton–Schulz
//     convergence region, then Newton–Schulz (no more inversions)
//   - Halley       — U·(3I + UᵗU)·(I + 3·UᵗU)⁻¹; cubic in the basin
//   - QDWH         — QR-based Dynamically Weighted Halley with a
//     self-adjusting lower bound on the smallest singular value
//   - SVD          — direct construction from a singular value
//     decomposition; no iteration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polarkit/polar"
//
//	opts := polar.DefaultOptions() // Newton, MaxIter=100, Tol=1e-6, Pivot=true
//	opts.Algorithm = polar.QDWH
//
//	res, err := polar.Decompose(a, opts)
//	if err != nil {
//	  // ErrInvalidConfig / ErrShape / ErrSingular — see errors.go
//	}
//	fmt.Println("iterations:", res.Iterations, "converged:", res.Converged)
//
// Convergence is declared when the relative change
// ‖Uₖ − Uₖ₋₁‖_F / ‖Uₖ‖_F drops to Tol or below.  Exhausting MaxIter is
// not an error: the Result carries Converged=false and the caller
// decides.  H is always assembled from the final iterate as the exact
// symmetrization of Uᵗ·A, so H == Hᵗ holds bit for bit.
//
// Iterative algorithms accept square input only; the SVD path also
// accepts rectangular input.  Extending QDWH to m > n is a known
// future extension, as is replacing its exact norm/condition estimates
// with cheaper approximations.
//
// Performance:
//
//   - Newton/Halley: one O(n³) inversion + multiplications per step
//   - NewtonSchulz:  multiplications only
//   - QDWH: one (m+n)×n QR factorization per step, typically 4–6 steps
//
// See example_test.go and the runnable scenarios under examples/.
package polar
