// SPDX-License-Identifier: MIT

// Package cv provides stratified k-fold partitions, the cross-validation
// runner, and held-out evaluation.
//
// A Fold is one (train-indices, test-indices) pair. StratifiedKFold builds
// k folds whose test sets partition [0, n) exactly once while keeping each
// fold's class proportions close to the global proportions. Without the
// shuffle option the partition is a pure function of the labels, so a rerun
// reproduces it bit for bit; shuffling requires an explicit seed.
//
// Score trains one fresh classifier per fold — instances never carry state
// across folds — scores its continuous decision values on the fold's test
// rows, and returns the arithmetic mean of the per-fold metric values.
// Evaluate applies an already-trained classifier to a disjoint held-out
// set; it performs no training and does not touch the classifier's state.
//
// ⚙️ Usage:
//
//	folds, err := cv.StratifiedKFold(yTrain, 5, nil)
//	mean, err := cv.Score(func() svm.Classifier {
//	    cfg := svm.DefaultConfig()
//	    cfg.C = 10
//	    return svm.New(cfg)
//	}, xTrain, yTrain, folds, metrics.AUROC)
package cv
