// SPDX-License-Identifier: MIT

// Package svm provides the classifier capability used by the rest of the
// lab: fit on a feature matrix with {+1, -1} labels, then produce
// continuous decision values whose sign is the predicted class and whose
// magnitude is confidence.
//
// The capability is the two-method Classifier interface; SVC is the
// concrete implementation, a binary support-vector classifier with linear
// or RBF kernel trained by the simplified SMO procedure. Downstream code
// (cross-validation, grid sweeps, held-out evaluation) depends only on the
// interface, so any classifier exposing fit + decision values plugs in.
//
// DecisionValues is deliberately the only prediction surface: ranking
// metrics need the raw values, and hard labels are recovered by sign where
// a metric calls for them.
//
// ⚙️ Usage:
//
//	cfg := svm.DefaultConfig()
//	cfg.Kernel, cfg.C, cfg.Gamma = svm.RBF, 100, 0.1
//	clf := svm.New(cfg)
//	if err := clf.Fit(xTrain, yTrain); err != nil { ... }
//	scores, err := clf.DecisionValues(xTest)
//
// Training randomness (the SMO partner-index draw) comes from the seed in
// Config; identical seed, data and config reproduce the identical model.
package svm
