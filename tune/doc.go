// SPDX-License-Identifier: MIT

// Package tune selects SVM hyperparameters by sweeping geometric grids
// under cross-validated scoring.
//
// The candidate grids are fixed powers of ten, 10⁻³ through 10², over C for
// the linear kernel and over (C, gamma) for the RBF kernel (36 pairs,
// C-major order). Sweep is the shared engine: it scores every candidate,
// optionally in parallel, and picks the first strictly-maximal score —
// ties therefore resolve toward the earliest candidate in grid order, and
// the running maximum starts at -Inf so the first candidate always seeds it.
//
// Candidate evaluation is embarrassingly parallel: each result is written
// to its own slot and the arg-max runs sequentially afterwards, so the
// outcome is identical whatever the completion order. Workers controls the
// bound; 1 (the default) is fully sequential.
//
// Sweep also returns the complete (candidate, score) curve in grid order.
// Rendering that curve is the caller's concern; this package only produces
// the data.
//
// ⚙️ Usage:
//
//	folds, _ := cv.StratifiedKFold(yTrain, 5, nil)
//	c, curve, err := tune.SelectLinear(xTrain, yTrain, folds, metrics.F1Score, nil)
//	best, err := tune.SelectRBF(xTrain, yTrain, folds, metrics.AUROC, nil)
package tune
