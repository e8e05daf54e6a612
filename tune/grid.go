// SPDX-License-Identifier: MIT

package tune

// paramRange is the canonical geometric range 10⁻³..10², shared by C and
// gamma. Literal values keep the grid exactly reproducible.
var paramRange = []float64{1e-3, 1e-2, 1e-1, 1, 10, 100}

// ParamRange returns the geometric hyperparameter range {10⁻³, …, 10²}.
// The slice is a copy.
func ParamRange() []float64 {
	out := make([]float64, len(paramRange))
	copy(out, paramRange)

	return out
}

// Candidate is one grid point. Gamma is 0 for linear-kernel candidates.
type Candidate struct {
	C     float64
	Gamma float64
}

// Result pairs a candidate with its cross-validated score.
type Result struct {
	Candidate Candidate
	Score     float64
}

// LinearGrid returns the 6 linear-kernel candidates in ascending C order.
func LinearGrid() []Candidate {
	grid := make([]Candidate, 0, len(paramRange))
	for _, c := range paramRange {
		grid = append(grid, Candidate{C: c})
	}

	return grid
}

// RBFGrid returns the 36 RBF candidates, C-major: for each C in ascending
// order, every gamma in ascending order.
func RBFGrid() []Candidate {
	grid := make([]Candidate, 0, len(paramRange)*len(paramRange))
	for _, c := range paramRange {
		for _, g := range paramRange {
			grid = append(grid, Candidate{C: c, Gamma: g})
		}
	}

	return grid
}
