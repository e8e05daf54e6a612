// SPDX-License-Identifier: MIT

// Package svmlab is an offline lab for supervised text classification:
// bag-of-words features, SVM classifiers, and cross-validated model selection.
//
// 🚀 What is svmlab?
//
//	A small, deterministic library for running a complete binary-classification
//	experiment over a fixed corpus of short documents:
//		• Features: punctuation-aware tokenizer, insertion-ordered vocabulary,
//		  dense {0,1} presence matrices
//		• Classifiers: linear- and RBF-kernel SVMs behind one capability
//		  interface (fit + continuous decision values)
//		• Evaluation: six metrics (accuracy, f1-score, auroc, precision,
//		  sensitivity, specificity) with documented edge-case conventions
//		• Selection: stratified k-fold cross-validation and geometric grid
//		  sweeps over C and (C, gamma)
//
// ✨ Why choose svmlab?
//
//   - Reproducible – no global state, every random choice takes an explicit seed
//   - Honest scoring – decision values stay continuous until a metric needs labels
//   - Small API – one package per pipeline stage, clear naming
//
// Everything is organized under six subpackages:
//
//	bow/      — tokenizer, vocabulary, feature-matrix builder
//	svm/      — the Classifier capability and an SMO-trained SVC
//	metrics/  — scalar performance metrics over labels and decision values
//	cv/       — stratified folds, cross-validation runner, held-out evaluator
//	tune/     — hyperparameter grids and cross-validated sweeps
//	dataset/  — whitespace-delimited vector files and corpus loading
//
// plus snapshot/ for persisting a trained model with its vocabulary, and
// cmd/svmlab, a CLI driver for the full sweep → train → predict flow.
//
//	go get github.com/katalvlaran/svmlab
package svmlab
