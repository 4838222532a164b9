// Package polar: QR-based Dynamically Weighted Halley (QDWH).

package polar

import (
	"math"
	"math/cmplx"

	lapackimpl "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// qdwhUpdater implements the dynamically weighted Halley iteration of
// Nakatsukasa, Bai and Gygi. It carries L, a lower bound on the
// smallest singular value of the normalized iterate, and re-derives
// the weights (a, b, c) from L every step:
//
//	d = ∛(4(1−L²)/L⁴)
//	a = √(1+d) + ½·√(8 − 4d + 8(2−L²)/(L²√(1+d)))
//	b = (a−1)²/4,  c = a + b − 1
//	L ← L(a + bL²)/(1 + cL²)
//
// The update itself is computed inverse-free from a QR factorization
// of the stacked matrix [√c·U; I]:
//
//	Uₖ = (b/c)·Uₖ₋₁ + (a − b/c)/√c · Q₁·Q₂ᵗ
//
// L approaches 1 monotonically; as it does, (a, b, c) tend to the
// plain-Halley weights (3, 1, 3) and the map turns cubically, then
// asymptotically quadratically, convergent.
//
// Square input only. Extending to m > n and replacing the exact
// norm/condition estimates with cheaper ones are known future
// extensions.
type qdwhUpdater struct {
	pivot bool

	l       float64
	history []float64 // L per iteration, starting with L₀
}

func newQDWHUpdater(pivot bool) *qdwhUpdater {
	return &qdwhUpdater{pivot: pivot}
}

// init normalizes U₀ = A/‖A‖_F (the Frobenius norm overestimates the
// largest singular value, keeping every σ ≤ 1) and seeds
// L₀ = (‖X₀‖₁ / κ₁(X₀)) / √n, a 1-norm condition-number lower bound
// on the smallest singular value.
func (q *qdwhUpdater) init(u *mat.Dense) error {
	_, n := u.Dims()

	alpha := mat.Norm(u, 2)
	if alpha == 0 {
		return ErrSingular
	}
	u.Scale(1/alpha, u)

	cond := mat.Cond(u, 1)
	if math.IsInf(cond, 1) || math.IsNaN(cond) {
		return ErrSingular
	}
	q.l = mat.Norm(u, 1) / cond / math.Sqrt(float64(n))
	q.history = append(q.history, q.l)

	return nil
}

func (q *qdwhUpdater) step(u *mat.Dense) error {
	m, n := u.Dims()

	l2 := q.l * q.l
	d := realCbrt(4 * (1 - l2) / (l2 * l2))
	sq := math.Sqrt(1 + d)
	a := sq + 0.5*math.Sqrt(8-4*d+8*(2-l2)/(l2*sq))
	b := (a - 1) * (a - 1) / 4
	c := a + b - 1

	// L is non-decreasing and capped at 1; the cap absorbs the last
	// few ulps of floating-point overshoot.
	q.l = math.Min(q.l*(a+b*l2)/(1+c*l2), 1)
	q.history = append(q.history, q.l)

	// Thin QR of the stacked (m+n)×n matrix [√c·U; I].
	stacked := make([]float64, (m+n)*n)
	raw := u.RawMatrix()
	sc := math.Sqrt(c)
	for i := 0; i < m; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+n]
		for j, v := range row {
			stacked[i*n+j] = sc * v
		}
	}
	for i := 0; i < n; i++ {
		stacked[(m+i)*n+i] = 1
	}
	qf := thinQR(stacked, m+n, n, q.pivot)

	q1 := qf.Slice(0, m, 0, n)
	q2 := qf.Slice(m, m+n, 0, n)

	// u = (b/c)·u + (a − b/c)/√c · Q₁·Q₂ᵗ
	var outer mat.Dense
	outer.Mul(q1, q2.T())
	outer.Scale((a-b/c)/sc, &outer)
	u.Scale(b/c, u)
	u.Add(u, &outer)

	return nil
}

// thinQR factors the row-major m×n matrix held in data and returns its
// thin orthonormal factor Q (m×n), overwriting data. With pivot set it
// uses the column-pivoted factorization (better backward stability);
// the permutation itself is discarded, since Q₁·Q₂ᵗ is invariant under
// column pivoting of the stacked matrix.
func thinQR(data []float64, m, n int, pivot bool) *mat.Dense {
	var impl lapackimpl.Implementation
	tau := make([]float64, n)

	if pivot {
		jpvt := make([]int, n)
		for i := range jpvt {
			jpvt[i] = -1 // all columns free
		}
		work := make([]float64, 1)
		impl.Dgeqp3(m, n, data, n, jpvt, tau, work, -1)
		work = make([]float64, int(work[0]))
		impl.Dgeqp3(m, n, data, n, jpvt, tau, work, len(work))
	} else {
		work := make([]float64, 1)
		impl.Dgeqrf(m, n, data, n, tau, work, -1)
		work = make([]float64, int(work[0]))
		impl.Dgeqrf(m, n, data, n, tau, work, len(work))
	}

	work := make([]float64, 1)
	impl.Dorgqr(m, n, n, data, n, tau, work, -1)
	work = make([]float64, int(work[0]))
	impl.Dorgqr(m, n, n, data, n, tau, work, len(work))

	return mat.NewDense(m, n, data)
}

// realCbrt returns the real cube root for non-negative x and the real
// part of the principal complex cube root otherwise. Near L = 1 the
// radicand 4(1−L²)/L⁴ can round below zero; the weight formulas remain
// valid with the complex branch, so this must never surface an error.
func realCbrt(x float64) float64 {
	if x >= 0 {
		return math.Cbrt(x)
	}

	return real(cmplx.Pow(complex(x, 0), 1.0/3.0))
}
