// SPDX-License-Identifier: MIT

package svm

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotTrained is returned by DecisionValues before a successful Fit.
	ErrNotTrained = errors.New("svm: classifier not trained")

	// ErrDimensionMismatch indicates rows(X) != len(y), or test features
	// whose width differs from the training features.
	ErrDimensionMismatch = errors.New("svm: feature/label dimension mismatch")

	// ErrEmptyTrainingSet indicates Fit was called with no rows.
	ErrEmptyTrainingSet = errors.New("svm: empty training set")

	// ErrBadLabel indicates a training label outside {+1, -1}.
	ErrBadLabel = errors.New("svm: labels must be +1 or -1")

	// ErrBadConfig indicates a nonsensical Config (C <= 0, unknown kernel,
	// or Gamma <= 0 with the RBF kernel).
	ErrBadConfig = errors.New("svm: invalid config")
)

// Classifier is the capability the pipeline trains and scores against.
// Implementations must train fresh state on every Fit call and must keep
// DecisionValues free of side effects.
type Classifier interface {
	// Fit trains on features X (n×d) and labels y in {+1, -1}, len(y) == n.
	Fit(x *mat.Dense, y []float64) error

	// DecisionValues returns one continuous score per row of X. Sign is the
	// predicted class; magnitude is confidence. Never returns hard labels.
	DecisionValues(x *mat.Dense) ([]float64, error)
}

// Kernel selects the SVC kernel function.
type Kernel int

const (
	// Linear kernel: K(u, v) = u·v.
	Linear Kernel = iota

	// RBF kernel: K(u, v) = exp(-gamma * ||u-v||²).
	RBF
)

// String returns the conventional kernel name.
func (k Kernel) String() string {
	switch k {
	case Linear:
		return "linear"
	case RBF:
		return "rbf"
	default:
		return "unknown"
	}
}

// Config parameterizes an SVC.
//
//   - Kernel — Linear or RBF.
//   - C — regularization strength, > 0.
//   - Gamma — RBF width, > 0; ignored by the linear kernel.
//   - Tol — KKT violation tolerance for SMO (default 1e-3).
//   - MaxPasses — consecutive alpha-stable sweeps before SMO stops.
//   - Seed — seeds the SMO partner-index draw; same seed, same model.
type Config struct {
	Kernel    Kernel
	C         float64
	Gamma     float64
	Tol       float64
	MaxPasses int
	Seed      int64
}

// DefaultConfig returns a linear-kernel configuration with C=1.
func DefaultConfig() Config {
	return Config{
		Kernel:    Linear,
		C:         1,
		Gamma:     0.1,
		Tol:       1e-3,
		MaxPasses: 10,
		Seed:      1,
	}
}

func (c Config) validate() error {
	if c.C <= 0 || c.Tol <= 0 || c.MaxPasses <= 0 {
		return ErrBadConfig
	}
	switch c.Kernel {
	case Linear:
		return nil
	case RBF:
		if c.Gamma <= 0 {
			return ErrBadConfig
		}
		return nil
	default:
		return ErrBadConfig
	}
}

// Model is the portable result of training: the support vectors, their
// signed coefficients (alpha_i * y_i) and the bias. It is what snapshot
// persistence serializes.
type Model struct {
	Kernel  Kernel      `msgpack:"kernel"`
	Gamma   float64     `msgpack:"gamma"`
	Bias    float64     `msgpack:"bias"`
	Coef    []float64   `msgpack:"coef"`
	Support [][]float64 `msgpack:"support"`
}
