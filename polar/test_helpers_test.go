package polar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hilbert returns the n×n Hilbert matrix, the classic ill-conditioned
// test case: H[i][j] = 1/(i+j+1).
func hilbert(n int) *mat.Dense {
	h := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h.Set(i, j, 1/float64(i+j+1))
		}
	}
	return h
}

// randomDense returns an n×n matrix with uniform [0,1) entries from a
// fixed seed, so every run sees the same instances.
func randomDense(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rng.Float64())
		}
	}
	return a
}

// rotation returns the 2×2 rotation matrix for angle theta — a handy
// exactly-orthogonal input.
func rotation(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// identity returns I_n as a Dense.
func identity(n int) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	return a
}

// scaledToNorm rescales a copy of a to the requested Frobenius norm.
func scaledToNorm(a *mat.Dense, norm float64) *mat.Dense {
	out := mat.DenseCopyOf(a)
	out.Scale(norm/mat.Norm(a, 2), out)
	return out
}

// reconstructionError returns ‖U·H − A‖_F / ‖A‖_F.
func reconstructionError(t *testing.T, u *mat.Dense, h *mat.SymDense, a mat.Matrix) float64 {
	t.Helper()
	var uh mat.Dense
	uh.Mul(u, h)
	var diff mat.Dense
	diff.Sub(&uh, a)
	return mat.Norm(&diff, 2) / mat.Norm(a, 2)
}

// orthoError returns ‖UᵗU − I‖_F.
func orthoError(u *mat.Dense) float64 {
	_, n := u.Dims()
	var g mat.Dense
	g.Mul(u.T(), u)
	for i := 0; i < n; i++ {
		g.Set(i, i, g.At(i, i)-1)
	}
	return mat.Norm(&g, 2)
}

// requireSymmetricExact asserts H == Hᵗ entry by entry, bit for bit.
func requireSymmetricExact(t *testing.T, h *mat.SymDense) {
	t.Helper()
	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, h.At(i, j), h.At(j, i), "H asymmetric at (%d,%d)", i, j)
		}
	}
}
