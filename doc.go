// Package polarkit computes polar decompositions of real matrices —
// A = U·H with U orthonormal and H symmetric positive semidefinite —
// through a family of iterative refinement algorithms sharing one
// convergence driver.
//
// 🚀 What is polarkit?
//
//	A focused numerical library built on gonum that brings together:
//		• Scaled Newton iteration with automatic scaling decay
//		• Newton–Schulz (inverse-free) iteration
//		• Hybrid Newton → Newton–Schulz crossover
//		• Halley iteration (cubically convergent)
//		• QDWH — QR-based Dynamically Weighted Halley
//		• Direct SVD construction (no iteration)
//
// ✨ Why choose polarkit?
//
//   - Minimal API – one entry point, one options struct, one result type
//   - Deterministic – no global state, injectable diagnostics sink
//   - Built on gonum – dense kernels, QR/SVD and condition estimates
//     come from gonum/mat and gonum/lapack
//
// Everything is organized under four packages:
//
//	polar/    — the iterative core: driver, update strategies, dispatcher
//	convplot/ — convergence-history plots (gonum/plot)
//	examples/ — runnable end-to-end scenarios
//	cmd/      — the polarfact command-line front end
//
// Quick example:
//
//	a := mat.NewDense(3, 3, []float64{2, 1, 0, 1, 3, 1, 0, 1, 4})
//	res, err := polar.Decompose(a, polar.DefaultOptions())
//	// res.U is orthogonal, res.H is symmetric PSD, U·H ≈ a
//
// See polar/doc.go for the algorithm catalogue and convergence notes.
package polarkit
