package polar_test

import (
	"testing"

	"github.com/katalvlaran/polarkit/polar"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// iterativeAlgorithms enumerates every algorithm that runs the shared
// convergence driver.
var iterativeAlgorithms = []polar.Algorithm{
	polar.Newton,
	polar.NewtonSchulz,
	polar.Hybrid,
	polar.Halley,
	polar.QDWH,
}

func TestDecompose_ConfigValidation(t *testing.T) {
	a := identity(3)

	opts := polar.DefaultOptions()
	opts.MaxIter = 1
	_, err := polar.Decompose(a, opts)
	require.ErrorIs(t, err, polar.ErrInvalidConfig)
	require.ErrorIs(t, err, polar.ErrInvalidMaxIter)

	opts = polar.DefaultOptions()
	opts.Tol = 0
	_, err = polar.Decompose(a, opts)
	require.ErrorIs(t, err, polar.ErrInvalidTolerance)

	opts = polar.DefaultOptions()
	opts.Algorithm = polar.Algorithm(99)
	_, err = polar.Decompose(a, opts)
	require.ErrorIs(t, err, polar.ErrUnknownAlgorithm)

	// Validate alone must fail before any matrix work.
	require.ErrorIs(t, polar.Options{Algorithm: polar.Newton, MaxIter: 1, Tol: 1e-6}.Validate(), polar.ErrInvalidConfig)
	require.NoError(t, polar.DefaultOptions().Validate())
}

func TestDecompose_ShapeValidation(t *testing.T) {
	rect := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 0, 0})

	for _, alg := range iterativeAlgorithms {
		opts := polar.DefaultOptions()
		opts.Algorithm = alg
		_, err := polar.Decompose(rect, opts)
		require.ErrorIs(t, err, polar.ErrNonSquare, "algorithm %v", alg)
		require.ErrorIs(t, err, polar.ErrShape)
	}

	_, err := polar.Decompose(nil, polar.DefaultOptions())
	require.ErrorIs(t, err, polar.ErrEmptyMatrix)
}

func TestDecompose_IdentityLaw(t *testing.T) {
	// For A = I the Newton-family and Halley maps fix the iterate
	// immediately: one step, zero change.
	a := identity(4)
	for _, alg := range []polar.Algorithm{polar.Newton, polar.NewtonSchulz, polar.Hybrid, polar.Halley} {
		opts := polar.DefaultOptions()
		opts.Algorithm = alg

		res, err := polar.Decompose(a, opts)
		require.NoError(t, err, "algorithm %v", alg)
		require.True(t, res.Converged, "algorithm %v", alg)
		require.LessOrEqual(t, res.Iterations, 1, "algorithm %v", alg)
		require.True(t, mat.EqualApprox(res.U, a, 1e-12), "U should be I for %v", alg)
		require.True(t, mat.EqualApprox(res.H, a, 1e-12), "H should be I for %v", alg)
	}

	// QDWH normalizes by the Frobenius norm, so its initial iterate is
	// I/√n and a few refinement steps are inherent. It must still land
	// exactly on U = H = I.
	opts := polar.DefaultOptions()
	opts.Algorithm = polar.QDWH
	res, err := polar.Decompose(a, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.LessOrEqual(t, res.Iterations, 6)
	require.True(t, mat.EqualApprox(res.U, a, 1e-8))
	require.True(t, mat.EqualApprox(res.H, a, 1e-8))
}

func TestDecompose_OrthogonalClosure(t *testing.T) {
	// An exactly orthogonal input is a fixed point of the Newton and
	// Halley maps: convergence in exactly one iteration.
	q := rotation(0.7)
	for _, alg := range []polar.Algorithm{polar.Newton, polar.Halley} {
		opts := polar.DefaultOptions()
		opts.Algorithm = alg

		res, err := polar.Decompose(q, opts)
		require.NoError(t, err, "algorithm %v", alg)
		require.True(t, res.Converged, "algorithm %v", alg)
		require.Equal(t, 1, res.Iterations, "algorithm %v", alg)
		require.True(t, mat.EqualApprox(res.U, q, 1e-12), "U should equal A for %v", alg)
		require.True(t, mat.EqualApprox(res.H, identity(2), 1e-12), "H should be I for %v", alg)
	}
}

func TestDecompose_ReconstructionAndOrthonormality(t *testing.T) {
	// Inputs chosen per algorithm: Newton–Schulz needs ‖A‖_F < √3,
	// everything else gets a mix of well- and ill-conditioned cases.
	base := []*mat.Dense{
		mat.NewDense(3, 3, []float64{2, 1, 0, 1, 3, 1, 0, 1, 4}),
		hilbert(4),
		randomDense(6, 3),
	}

	const tolFactor = 100 * polar.DefaultTol

	for _, alg := range iterativeAlgorithms {
		for i, a := range base {
			in := a
			if alg == polar.NewtonSchulz {
				in = scaledToNorm(a, 0.9)
			}
			opts := polar.DefaultOptions()
			opts.Algorithm = alg

			res, err := polar.Decompose(in, opts)
			require.NoError(t, err, "algorithm %v case %d", alg, i)
			require.True(t, res.Converged, "algorithm %v case %d", alg, i)
			require.LessOrEqual(t, reconstructionError(t, res.U, res.H, in), tolFactor,
				"reconstruction drift for %v case %d", alg, i)
			require.LessOrEqual(t, orthoError(res.U), tolFactor,
				"orthonormality drift for %v case %d", alg, i)
			requireSymmetricExact(t, res.H)
		}
	}
}

func TestDecompose_InputNotMutated(t *testing.T) {
	a := randomDense(5, 11)
	want := mat.DenseCopyOf(a)

	for _, alg := range append(iterativeAlgorithms, polar.SVD) {
		opts := polar.DefaultOptions()
		opts.Algorithm = alg
		_, err := polar.Decompose(a, opts)
		require.NoError(t, err)
		require.True(t, mat.Equal(a, want), "input mutated by %v", alg)
	}
}

func TestDecompose_NonConvergenceIsNotAnError(t *testing.T) {
	opts := polar.DefaultOptions()
	opts.MaxIter = 2 // far too few for a Hilbert matrix

	res, err := polar.Decompose(hilbert(6), opts)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 2, res.Iterations)
	require.NotNil(t, res.U)
	require.NotNil(t, res.H)
	requireSymmetricExact(t, res.H)
}

func TestDecompose_SVD(t *testing.T) {
	opts := polar.DefaultOptions()
	opts.Algorithm = polar.SVD

	t.Run("square", func(t *testing.T) {
		a := randomDense(5, 17)
		res, err := polar.Decompose(a, opts)
		require.NoError(t, err)
		require.False(t, res.Iterative())
		require.Zero(t, res.Iterations)
		require.False(t, res.Converged)
		require.LessOrEqual(t, reconstructionError(t, res.U, res.H, a), 1e-10)
		require.LessOrEqual(t, orthoError(res.U), 1e-10)
		requireSymmetricExact(t, res.H)
	})

	t.Run("tall", func(t *testing.T) {
		a := mat.NewDense(4, 2, []float64{1, 2, 0, 1, 3, 0, 1, 1})
		res, err := polar.Decompose(a, opts)
		require.NoError(t, err)
		require.LessOrEqual(t, reconstructionError(t, res.U, res.H, a), 1e-10)
		// Columns orthonormal for m > n.
		require.LessOrEqual(t, orthoError(res.U), 1e-10)
		requireSymmetricExact(t, res.H)
	})

	t.Run("wide", func(t *testing.T) {
		a := mat.NewDense(2, 4, []float64{1, 2, 0, 1, 3, 0, 1, 1})
		res, err := polar.Decompose(a, opts)
		require.NoError(t, err)
		require.LessOrEqual(t, reconstructionError(t, res.U, res.H, a), 1e-10)
		// Rows orthonormal for m < n: U·Uᵗ = I.
		var g mat.Dense
		g.Mul(res.U, res.U.T())
		require.True(t, mat.EqualApprox(&g, identity(2), 1e-10))
		requireSymmetricExact(t, res.H)
	})
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range append(iterativeAlgorithms, polar.SVD) {
		got, err := polar.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, got)
	}
	_, err := polar.ParseAlgorithm("cholesky")
	require.ErrorIs(t, err, polar.ErrUnknownAlgorithm)
}
