// SPDX-License-Identifier: MIT

// Package metrics scores binary classifiers from true labels in {+1, -1}
// and continuous decision values.
//
// Every metric except AUROC first binarizes the decision values by sign,
// with exactly-zero values mapped to +1 (a fixed tie-break convention).
// AUROC alone ranks the raw continuous values; feeding it hard labels
// instead of decision values is a correctness bug, not a style choice.
//
// Edge-case conventions, kept deliberately and documented per metric:
//
//   - sensitivity with TP+FN == 0 → 0 (not NaN)
//   - specificity with TN+FP == 0 → 0 (not NaN)
//   - precision with TP+FP == 0 → 0; f1-score with P+R == 0 → 0
//   - an unknown metric name is an error, never a silent default
//
// ⚙️ Usage:
//
//	score, err := metrics.Score(yTrue, decisionValues, metrics.F1Score)
//
// All functions are pure; nothing in this package holds state.
package metrics
