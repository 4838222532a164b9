// Package convplot renders the convergence history of a polar
// decomposition run — the (iteration, relative error, objective)
// stream captured by a polar.Recorder — as a log-scale line chart.
//
// ⚙️ Usage:
//
//	rec := &polar.Recorder{}
//	opts := polar.DefaultOptions()
//	opts.Reporter = rec
//	_, _ = polar.Decompose(a, opts)
//
//	if err := convplot.Save(rec.Records, "newton on hilbert(6)", "conv.png"); err != nil {
//	  // no records, or the render/encode step failed
//	}
//
// The relative error drives the stop condition and the objective
// (deviation from orthonormality) is diagnostic; seeing both on one
// chart makes scaling phases and hybrid crossovers visible at a
// glance. Values are floored at 1e-16 so a fully converged tail
// survives the logarithmic axis.
package convplot
