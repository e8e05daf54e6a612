// SPDX-License-Identifier: MIT

package bow

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnknownToken indicates a corpus token absent from the fixed
	// vocabulary — a caller contract violation, never zero-filled.
	ErrUnknownToken = errors.New("bow: token not in vocabulary")

	// ErrEmptyCorpus indicates there is nothing to vectorize: no documents,
	// or a vocabulary with no entries.
	ErrEmptyCorpus = errors.New("bow: empty corpus or vocabulary")
)

// FeatureMatrix builds the dense (n×d) presence matrix for the corpus under
// a fixed vocabulary: cell (i, vocab[token]) = 1 for every distinct token of
// document i, 0 elsewhere. Duplicate tokens within a document are idempotent.
//
// Every token of every document must already be in vocab; otherwise the
// build aborts with ErrUnknownToken (wrapped with document position).
func FeatureMatrix(lines []string, vocab *Vocabulary) (*mat.Dense, error) {
	if len(lines) == 0 || vocab == nil || vocab.Len() == 0 {
		return nil, ErrEmptyCorpus
	}

	x := mat.NewDense(len(lines), vocab.Len(), nil)
	for i, line := range lines {
		for _, tok := range ExtractWords(line) {
			j, ok := vocab.Index(tok)
			if !ok {
				return nil, fmt.Errorf("document %d, token %q: %w", i, tok, ErrUnknownToken)
			}
			x.Set(i, j, 1)
		}
	}

	return x, nil
}
