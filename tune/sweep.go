// SPDX-License-Identifier: MIT

package tune

import (
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/svmlab/cv"
	"github.com/katalvlaran/svmlab/metrics"
	"github.com/katalvlaran/svmlab/svm"
)

var (
	// ErrEmptyGrid indicates there are no candidates to sweep.
	ErrEmptyGrid = errors.New("tune: empty candidate grid")

	// ErrNilScorer indicates a nil scoring function.
	ErrNilScorer = errors.New("tune: nil scorer")
)

// Scorer evaluates one candidate, typically via cv.Score.
type Scorer func(Candidate) (float64, error)

// SweepOptions configures a sweep.
//   - Workers — bound on concurrently scored candidates; <= 1 means
//     sequential. Parallelism never changes the selected candidate.
//   - Base — the svm.Config the selectors derive per-candidate configs
//     from (seed, tolerance, passes); nil means svm.DefaultConfig().
type SweepOptions struct {
	Workers int
	Base    *svm.Config
}

func (o *SweepOptions) workers() int {
	if o == nil || o.Workers <= 1 {
		return 1
	}

	return o.Workers
}

func (o *SweepOptions) base() svm.Config {
	if o == nil || o.Base == nil {
		return svm.DefaultConfig()
	}

	return *o.Base
}

// Sweep scores every candidate in grid order and returns the winner plus
// the full curve. The winner is the first candidate whose score strictly
// exceeds the running maximum, which starts at -Inf; equal scores keep the
// earlier candidate. Any scorer error aborts the sweep.
func Sweep(grid []Candidate, score Scorer, opts *SweepOptions) (Result, []Result, error) {
	if len(grid) == 0 {
		return Result{}, nil, ErrEmptyGrid
	}
	if score == nil {
		return Result{}, nil, ErrNilScorer
	}

	scores := make([]float64, len(grid))
	var g errgroup.Group
	g.SetLimit(opts.workers())
	for i, cand := range grid {
		i, cand := i, cand
		g.Go(func() error {
			s, err := score(cand)
			if err != nil {
				return err
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, nil, err
	}

	curve := make([]Result, len(grid))
	best := Result{Score: math.Inf(-1)}
	for i, cand := range grid {
		curve[i] = Result{Candidate: cand, Score: scores[i]}
		if scores[i] > best.Score {
			best = curve[i]
		}
	}

	return best, curve, nil
}

// SelectLinear sweeps C over the linear grid with cross-validated scoring
// under metric m and returns the winning C together with the full
// (candidate, score) curve for external plotting.
func SelectLinear(x *mat.Dense, y []float64, folds []cv.Fold, m metrics.Metric, opts *SweepOptions) (float64, []Result, error) {
	best, curve, err := Sweep(LinearGrid(), cvScorer(x, y, folds, m, opts.base(), svm.Linear), opts)
	if err != nil {
		return 0, nil, err
	}

	return best.Candidate.C, curve, nil
}

// SelectRBF sweeps the 36-point (C, gamma) grid with cross-validated
// scoring under metric m and returns the winning pair with its score.
func SelectRBF(x *mat.Dense, y []float64, folds []cv.Fold, m metrics.Metric, opts *SweepOptions) (Result, error) {
	best, _, err := Sweep(RBFGrid(), cvScorer(x, y, folds, m, opts.base(), svm.RBF), opts)
	if err != nil {
		return Result{}, err
	}

	return best, nil
}

// cvScorer adapts cv.Score into a Scorer building one classifier config per
// candidate on top of base.
func cvScorer(x *mat.Dense, y []float64, folds []cv.Fold, m metrics.Metric, base svm.Config, kernel svm.Kernel) Scorer {
	return func(cand Candidate) (float64, error) {
		cfg := base
		cfg.Kernel = kernel
		cfg.C = cand.C
		if kernel == svm.RBF {
			cfg.Gamma = cand.Gamma
		}

		return cv.Score(func() svm.Classifier { return svm.New(cfg) }, x, y, folds, m)
	}
}
