// SPDX-License-Identifier: MIT

package svm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// alphaEps is the threshold below which a multiplier is treated as zero
// when collecting support vectors.
const alphaEps = 1e-8

// maxSweeps caps the total number of SMO sweeps; training stops with the
// current alphas if the MaxPasses quiet streak is never reached.
const maxSweeps = 1000

// SVC is a binary support-vector classifier trained by simplified SMO
// (Platt's sequential minimal optimization with random partner selection).
//
// A fresh SVC is untrained; Fit replaces any previous model wholesale, so
// reusing one instance across folds cannot leak state — though the
// pipeline constructs a new instance per fold regardless.
type SVC struct {
	cfg     Config
	kernel  func(u, v []float64) float64
	support [][]float64
	coef    []float64 // alpha_i * y_i per support vector
	bias    float64
	width   int
	trained bool
}

// New constructs an untrained SVC from cfg. Invalid configs surface on Fit.
func New(cfg Config) *SVC {
	return &SVC{cfg: cfg, kernel: cfg.kernelFunc()}
}

// NewFromModel reconstructs a trained SVC from a persisted Model.
func NewFromModel(m Model) *SVC {
	cfg := DefaultConfig()
	cfg.Kernel = m.Kernel
	if m.Kernel == RBF {
		cfg.Gamma = m.Gamma
	}
	s := New(cfg)
	s.support = m.Support
	s.coef = m.Coef
	s.bias = m.Bias
	if len(m.Support) > 0 {
		s.width = len(m.Support[0])
	}
	s.trained = true

	return s
}

// Model exports the trained support vectors, coefficients and bias.
// Returns ErrNotTrained before a successful Fit.
func (s *SVC) Model() (Model, error) {
	if !s.trained {
		return Model{}, ErrNotTrained
	}

	return Model{
		Kernel:  s.cfg.Kernel,
		Gamma:   s.cfg.Gamma,
		Bias:    s.bias,
		Coef:    s.coef,
		Support: s.support,
	}, nil
}

// Fit trains the classifier on X (n×d) and labels y in {+1, -1}.
//
// Simplified SMO outline:
//  1. Precompute the n×n kernel matrix.
//  2. Sweep examples; for each KKT violator i pick a random partner j != i
//     and jointly optimize (alpha_i, alpha_j) analytically, clipping to the
//     [0, C] box, then update the bias from the margin conditions.
//  3. Stop after MaxPasses consecutive sweeps without an alpha change.
//
// Complexity: O(n²·d) for the kernel matrix plus O(n²) per sweep.
func (s *SVC) Fit(x *mat.Dense, y []float64) error {
	if err := s.cfg.validate(); err != nil {
		return err
	}
	if x == nil {
		return ErrEmptyTrainingSet
	}
	n, d := x.Dims()
	if n == 0 {
		return ErrEmptyTrainingSet
	}
	if len(y) != n {
		return ErrDimensionMismatch
	}
	for _, v := range y {
		if v != 1 && v != -1 {
			return ErrBadLabel
		}
	}

	if n == 1 {
		// Degenerate single-example set: no pair to optimize; predict the
		// lone label everywhere.
		s.support, s.coef = nil, nil
		s.bias = y[0]
		s.width = d
		s.trained = true

		return nil
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = x.RawRowView(i)
	}

	// Full kernel matrix; n is a few hundred here, so O(n²) memory is fine.
	k := make([][]float64, n)
	for i := 0; i < n; i++ {
		k[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			v := s.kernel(rows[i], rows[j])
			k[i][j] = v
			k[j][i] = v
		}
	}

	alpha := make([]float64, n)
	var bias float64
	rng := rand.New(rand.NewSource(s.cfg.Seed))

	// f(i) = Σ_j alpha_j y_j K(j,i) + bias
	f := func(i int) float64 {
		sum := bias
		for j := 0; j < n; j++ {
			if alpha[j] > 0 {
				sum += alpha[j] * y[j] * k[j][i]
			}
		}
		return sum
	}

	c, tol := s.cfg.C, s.cfg.Tol
	for passes, sweeps := 0, 0; passes < s.cfg.MaxPasses && sweeps < maxSweeps; sweeps++ {
		changed := 0
		for i := 0; i < n; i++ {
			ei := f(i) - y[i]
			if !((y[i]*ei < -tol && alpha[i] < c) || (y[i]*ei > tol && alpha[i] > 0)) {
				continue
			}

			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			ej := f(j) - y[j]

			ai, aj := alpha[i], alpha[j]
			var lo, hi float64
			if y[i] != y[j] {
				lo = math.Max(0, aj-ai)
				hi = math.Min(c, c+aj-ai)
			} else {
				lo = math.Max(0, ai+aj-c)
				hi = math.Min(c, ai+aj)
			}
			if lo == hi {
				continue
			}

			eta := 2*k[i][j] - k[i][i] - k[j][j]
			if eta >= 0 {
				continue
			}

			alpha[j] = aj - y[j]*(ei-ej)/eta
			alpha[j] = math.Min(hi, math.Max(lo, alpha[j]))
			if math.Abs(alpha[j]-aj) < 1e-5 {
				alpha[j] = aj
				continue
			}
			alpha[i] = ai + y[i]*y[j]*(aj-alpha[j])

			b1 := bias - ei - y[i]*(alpha[i]-ai)*k[i][i] - y[j]*(alpha[j]-aj)*k[i][j]
			b2 := bias - ej - y[i]*(alpha[i]-ai)*k[i][j] - y[j]*(alpha[j]-aj)*k[j][j]
			switch {
			case alpha[i] > 0 && alpha[i] < c:
				bias = b1
			case alpha[j] > 0 && alpha[j] < c:
				bias = b2
			default:
				bias = (b1 + b2) / 2
			}
			changed++
		}
		if changed == 0 {
			passes++
		} else {
			passes = 0
		}
	}

	// Keep only the support vectors; copy rows so the model does not alias
	// the caller's matrix.
	s.support = nil
	s.coef = nil
	for i := 0; i < n; i++ {
		if alpha[i] > alphaEps {
			row := make([]float64, d)
			copy(row, rows[i])
			s.support = append(s.support, row)
			s.coef = append(s.coef, alpha[i]*y[i])
		}
	}
	s.bias = bias
	s.width = d
	s.trained = true

	return nil
}

// DecisionValues returns one continuous decision value per row of X:
// Σ_k coef_k K(sv_k, x) + bias. The receiver is not mutated.
func (s *SVC) DecisionValues(x *mat.Dense) ([]float64, error) {
	if !s.trained {
		return nil, ErrNotTrained
	}
	if x == nil {
		return nil, ErrDimensionMismatch
	}
	n, d := x.Dims()
	if d != s.width {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		sum := s.bias
		for j, sv := range s.support {
			sum += s.coef[j] * s.kernel(sv, row)
		}
		out[i] = sum
	}

	return out, nil
}
