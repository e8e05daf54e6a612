// SPDX-License-Identifier: MIT

// Package bow builds bag-of-words presence features from raw text.
//
// The pipeline has three stages, each deterministic:
//
//  1. ExtractWords — normalize one document: every ASCII punctuation mark
//     becomes its own token, the rest is lowercased and split on whitespace.
//  2. Vocabulary — assign each distinct token a stable integer index in
//     first-seen order while scanning the corpus top to bottom.
//  3. FeatureMatrix — one row per document, one column per vocabulary entry,
//     cell (i, j) = 1 iff token j occurs in document i (presence, not count).
//
// The vocabulary is immutable once built; feature extraction over a corpus
// that introduces unknown tokens is a caller error and is surfaced as
// ErrUnknownToken rather than silently zero-filled.
//
// ⚙️ Usage:
//
//	lines, _ := dataset.ReadLines("tweets.txt")
//	vocab := bow.BuildVocabulary(lines)
//	X, err := bow.FeatureMatrix(lines, vocab)
//
// Complexity: O(total tokens) time for all three stages; the matrix is a
// dense (n×d) gonum mat.Dense.
package bow
