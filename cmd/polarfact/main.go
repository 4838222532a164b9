// Command polarfact computes the polar decomposition A = U·H of a
// matrix read from a CSV file.
//
// Usage:
//
//	polarfact --algorithm qdwh --plot conv.png matrix.csv
//
// The file holds one matrix row per line, comma-separated. Iterative
// algorithms require a square matrix; the svd algorithm also accepts
// rectangular input.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polarkit/convplot"
	"github.com/katalvlaran/polarkit/polar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		algName  string
		maxIter  int
		tol      float64
		verbose  bool
		noPivot  bool
		plotPath string
	)

	cmd := &cobra.Command{
		Use:   "polarfact <matrix.csv>",
		Short: "Compute the polar decomposition A = U·H",
		Long: `polarfact factors a real matrix A into U·H, where U is orthonormal
and H is symmetric positive semidefinite.

Algorithms: newton (default), schulz, hybrid, halley, qdwh, svd.
The input is a CSV file with one matrix row per line.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := polar.ParseAlgorithm(algName)
			if err != nil {
				return fmt.Errorf("--algorithm %q: %w", algName, err)
			}

			a, err := loadCSV(args[0])
			if err != nil {
				return err
			}

			rec := &polar.Recorder{}
			opts := polar.Options{
				Algorithm: alg,
				MaxIter:   maxIter,
				Tol:       tol,
				Pivot:     !noPivot,
				Reporter:  rec,
			}

			res, err := polar.Decompose(a, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range rec.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			if verbose && len(rec.Records) > 0 {
				table := polar.NewTableReporter(out)
				for _, r := range rec.Records {
					table.Report(r.Iter, r.RelErr, r.Objective)
				}
			}

			m, n := a.Dims()
			fmt.Fprintf(out, "algorithm: %s, input: %d×%d\n", res.Algorithm, m, n)
			if res.Iterative() {
				fmt.Fprintf(out, "converged: %v in %d iterations (tol %g)\n", res.Converged, res.Iterations, tol)
			}
			fmt.Fprintf(out, "U =\n%v\n", mat.Formatted(res.U, mat.Prefix("    "), mat.Squeeze()))
			fmt.Fprintf(out, "H =\n%v\n", mat.Formatted(res.H, mat.Prefix("    "), mat.Squeeze()))

			if plotPath != "" {
				if len(rec.Records) == 0 {
					return fmt.Errorf("--plot: the %s algorithm produces no iteration history", res.Algorithm)
				}
				title := fmt.Sprintf("%s on %d×%d input", res.Algorithm, m, n)
				if err := convplot.Save(rec.Records, title, plotPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", plotPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&algName, "algorithm", "a", "newton", "newton, schulz, hybrid, halley, qdwh or svd")
	cmd.Flags().IntVar(&maxIter, "maxiter", polar.DefaultMaxIter, "iteration bound (must exceed 1)")
	cmd.Flags().Float64Var(&tol, "tol", polar.DefaultTol, "relative-change convergence tolerance")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-iteration diagnostics")
	cmd.Flags().BoolVar(&noPivot, "no-pivot", false, "disable column pivoting in the QDWH QR step")
	cmd.Flags().StringVar(&plotPath, "plot", "", "save the convergence history chart to this file")

	return cmd
}

// loadCSV reads a dense matrix: one row per record, all rows the same
// length, every field a float.
func loadCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: empty matrix", path)
	}

	m, n := len(rows), len(rows[0])
	a := mat.NewDense(m, n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d fields, want %d", path, i+1, len(row), n)
		}
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d field %d: %w", path, i+1, j+1, err)
			}
			a.Set(i, j, v)
		}
	}

	return a, nil
}
