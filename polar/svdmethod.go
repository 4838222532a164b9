// Package polar: direct construction from a singular value
// decomposition. Not part of the iterative core — included so that
// callers get the same Result shape from every algorithm.

package polar

import "gonum.org/v1/gonum/mat"

// svdDecompose builds U = P·Qᵗ and H = Q·Σ·Qᵗ from the thin SVD
// A = P·Σ·Qᵗ. Handles rectangular input in both orientations: for
// m ≥ n the columns of U are orthonormal, for m < n its rows are.
// Iterations and Converged are left at their zero values.
func svdDecompose(a mat.Matrix, opts Options) (Result, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return Result{}, ErrSVDFailed
	}

	var p, q mat.Dense
	svd.UTo(&p)
	svd.VTo(&q)
	s := svd.Values(nil)

	var u mat.Dense
	u.Mul(&p, q.T())

	// H = Q·Σ·Qᵗ, written symmetrically.
	k := len(s)
	var qs mat.Dense
	qs.Mul(&q, mat.NewDiagDense(k, s))
	var h mat.Dense
	h.Mul(&qs, q.T())

	_, n := a.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (h.At(i, j)+h.At(j, i))/2)
		}
	}

	return Result{
		U:         &u,
		H:         sym,
		Algorithm: opts.Algorithm,
	}, nil
}
