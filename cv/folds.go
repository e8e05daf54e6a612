// SPDX-License-Identifier: MIT

package cv

import (
	"errors"
	"math/rand"
	"sort"
)

var (
	// ErrBadFoldCount indicates k < 2 or k > number of examples.
	ErrBadFoldCount = errors.New("cv: fold count must be in [2, len(y)]")

	// ErrEmptyLabels indicates there are no labels to partition.
	ErrEmptyLabels = errors.New("cv: empty label vector")
)

// Fold is one train/test split over row indices of the feature matrix.
type Fold struct {
	Train []int
	Test  []int
}

// FoldOptions configures StratifiedKFold.
//   - Shuffle — permute each class's indices before chunking.
//   - Seed — seeds the permutation; required meaningfully only with Shuffle.
//
// The zero value (no shuffle) reproduces the same partition on every call.
type FoldOptions struct {
	Shuffle bool
	Seed    int64
}

// StratifiedKFold partitions indices [0, len(y)) into k folds. Each index
// appears in exactly one test set, and every fold's test set draws from
// each class in proportion to the class's global share: a class's ordered
// indices are cut into k nearly-equal chunks (larger chunks first) and
// chunk f goes to fold f.
//
// opts may be nil for the deterministic default.
func StratifiedKFold(y []float64, k int, opts *FoldOptions) ([]Fold, error) {
	n := len(y)
	if n == 0 {
		return nil, ErrEmptyLabels
	}
	if k < 2 || k > n {
		return nil, ErrBadFoldCount
	}

	// Group indices per class value, classes visited in sorted label order
	// for determinism.
	byClass := make(map[float64][]int)
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}
	labels := make([]float64, 0, len(byClass))
	for label := range byClass {
		labels = append(labels, label)
	}
	sort.Float64s(labels)

	if opts != nil && opts.Shuffle {
		rng := rand.New(rand.NewSource(opts.Seed))
		for _, label := range labels {
			idx := byClass[label]
			rng.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })
		}
	}

	tests := make([][]int, k)
	for _, label := range labels {
		idx := byClass[label]
		base, extra := len(idx)/k, len(idx)%k
		start := 0
		for f := 0; f < k; f++ {
			size := base
			if f < extra {
				size++
			}
			tests[f] = append(tests[f], idx[start:start+size]...)
			start += size
		}
	}

	folds := make([]Fold, k)
	for f := 0; f < k; f++ {
		if len(tests[f]) == 0 {
			// k exceeds what the class sizes can populate.
			return nil, ErrBadFoldCount
		}
		sort.Ints(tests[f])
		inTest := make(map[int]bool, len(tests[f]))
		for _, i := range tests[f] {
			inTest[i] = true
		}
		train := make([]int, 0, n-len(tests[f]))
		for i := 0; i < n; i++ {
			if !inTest[i] {
				train = append(train, i)
			}
		}
		folds[f] = Fold{Train: train, Test: tests[f]}
	}

	return folds, nil
}
