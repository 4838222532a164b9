// Package polar: hybrid Newton → Newton–Schulz iteration.

package polar

import "gonum.org/v1/gonum/mat"

// hybridUpdater composes the two strategies behind one step function.
// It starts in Newton mode and, after each Newton step, checks whether
// ‖UᵗU − I‖_F has dropped below hybridSwitchTol — once inside that
// region Newton–Schulz is guaranteed to converge, so the updater
// switches to it permanently and the remaining iterations avoid matrix
// inversion entirely. The switch is one-way: Newton–Schulz keeps the
// iterate inside its own convergence region.
type hybridUpdater struct {
	newton *newtonUpdater
	schulz schulzUpdater

	switched   bool
	switchedAt int // iteration index of the last Newton step; 0 while in Newton mode
	steps      int
}

func newHybridUpdater() *hybridUpdater {
	return &hybridUpdater{newton: newNewtonUpdater()}
}

func (h *hybridUpdater) step(u *mat.Dense) error {
	h.steps++
	if h.switched {
		return h.schulz.step(u)
	}

	if err := h.newton.step(u); err != nil {
		return err
	}
	if orthoDistance(u) < hybridSwitchTol {
		h.switched = true
		h.switchedAt = h.steps
	}

	return nil
}

func (h *hybridUpdater) observe(relerr float64) {
	h.newton.observe(relerr)
}
