// SPDX-License-Identifier: MIT

package cv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/svmlab/metrics"
	"github.com/katalvlaran/svmlab/svm"
)

var (
	// ErrNoFolds indicates an empty fold partition.
	ErrNoFolds = errors.New("cv: no folds")

	// ErrNilFactory indicates a nil classifier factory.
	ErrNilFactory = errors.New("cv: nil classifier factory")

	// ErrLengthMismatch indicates rows(X) != len(y).
	ErrLengthMismatch = errors.New("cv: feature rows and labels differ in length")
)

// Factory produces a fresh, untrained classifier. Score calls it once per
// fold so that no training state survives between folds.
type Factory func() svm.Classifier

// Score runs k-fold cross-validation: per fold it trains a fresh classifier
// on the train rows, takes continuous decision values on the test rows,
// scores them under m, and finally returns the arithmetic mean across folds.
func Score(newClf Factory, x *mat.Dense, y []float64, folds []Fold, m metrics.Metric) (float64, error) {
	if newClf == nil {
		return 0, ErrNilFactory
	}
	if len(folds) == 0 {
		return 0, ErrNoFolds
	}
	if x == nil {
		return 0, ErrLengthMismatch
	}
	rows, _ := x.Dims()
	if rows != len(y) {
		return 0, ErrLengthMismatch
	}

	scores := make([]float64, 0, len(folds))
	for f, fold := range folds {
		clf := newClf()
		if err := clf.Fit(subsetRows(x, fold.Train), subset(y, fold.Train)); err != nil {
			return 0, fmt.Errorf("fold %d fit: %w", f, err)
		}
		pred, err := clf.DecisionValues(subsetRows(x, fold.Test))
		if err != nil {
			return 0, fmt.Errorf("fold %d score: %w", f, err)
		}
		s, err := metrics.Score(subset(y, fold.Test), pred, m)
		if err != nil {
			return 0, fmt.Errorf("fold %d metric: %w", f, err)
		}
		scores = append(scores, s)
	}

	return stat.Mean(scores, nil), nil
}

// Evaluate scores an already-trained classifier on a held-out set. It never
// trains and never mutates clf.
func Evaluate(clf svm.Classifier, x *mat.Dense, y []float64, m metrics.Metric) (float64, error) {
	if x == nil {
		return 0, ErrLengthMismatch
	}
	rows, _ := x.Dims()
	if rows != len(y) {
		return 0, ErrLengthMismatch
	}
	pred, err := clf.DecisionValues(x)
	if err != nil {
		return 0, err
	}

	return metrics.Score(y, pred, m)
}

// subsetRows copies the selected rows of x into a new dense matrix.
func subsetRows(x *mat.Dense, idx []int) *mat.Dense {
	_, cols := x.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for r, i := range idx {
		out.SetRow(r, x.RawRowView(i))
	}

	return out
}

// subset copies the selected elements of v.
func subset(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for r, i := range idx {
		out[r] = v[i]
	}

	return out
}
