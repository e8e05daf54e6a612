// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/svmlab/bow"
	"github.com/katalvlaran/svmlab/dataset"
	"github.com/katalvlaran/svmlab/svm"
)

// split holds the vectorized corpus cut into the train and held-out halves.
type split struct {
	vocab  *bow.Vocabulary
	xTrain *mat.Dense
	xTest  *mat.Dense
	yTrain []float64
	yTest  []float64
}

// loadSplit reads the corpus and labels, builds the vocabulary over the
// whole corpus (so the held-out half introduces no unknown tokens), and
// splits features and labels at TrainRows.
func loadSplit(cfg Experiment) (*split, error) {
	lines, err := dataset.ReadLines(cfg.Corpus)
	if err != nil {
		return nil, err
	}
	y, err := dataset.ReadVector(cfg.Labels)
	if err != nil {
		return nil, err
	}
	if len(y) != len(lines) {
		return nil, fmt.Errorf("corpus has %d documents but labels has %d values", len(lines), len(y))
	}
	if cfg.TrainRows >= len(lines) {
		return nil, fmt.Errorf("train_rows %d leaves no held-out rows (corpus has %d)", cfg.TrainRows, len(lines))
	}

	vocab := bow.BuildVocabulary(lines)
	x, err := bow.FeatureMatrix(lines, vocab)
	if err != nil {
		return nil, err
	}

	_, d := x.Dims()
	return &split{
		vocab:  vocab,
		xTrain: x.Slice(0, cfg.TrainRows, 0, d).(*mat.Dense),
		xTest:  x.Slice(cfg.TrainRows, len(lines), 0, d).(*mat.Dense),
		yTrain: y[:cfg.TrainRows],
		yTest:  y[cfg.TrainRows:],
	}, nil
}

// baseConfig threads the experiment seed into classifier construction.
func baseConfig(cfg Experiment) svm.Config {
	base := svm.DefaultConfig()
	base.Seed = cfg.Seed

	return base
}

// parseKernel maps the CLI kernel name.
func parseKernel(name string) (svm.Kernel, error) {
	switch name {
	case "linear":
		return svm.Linear, nil
	case "rbf":
		return svm.RBF, nil
	default:
		return 0, fmt.Errorf("unknown kernel %q (want linear or rbf)", name)
	}
}
