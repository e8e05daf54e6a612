// SPDX-License-Identifier: MIT

package bow_test

import (
	"fmt"

	"github.com/katalvlaran/svmlab/bow"
)

// ExampleBuildVocabulary demonstrates the full feature pipeline on a tiny
// two-document corpus: tokenize, index, vectorize.
func ExampleBuildVocabulary() {
	corpus := []string{
		"Great movie!",
		"great... just great",
	}

	vocab := bow.BuildVocabulary(corpus)
	x, err := bow.FeatureMatrix(corpus, vocab)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, cols := x.Dims()
	fmt.Println("tokens:", vocab.Tokens())
	fmt.Printf("shape: %dx%d\n", rows, cols)
	fmt.Println("row 0:", mat64Row(x.RawRowView(0)))
	fmt.Println("row 1:", mat64Row(x.RawRowView(1)))
	// Output:
	// tokens: [great movie ! . just]
	// shape: 2x5
	// row 0: [1 1 1 0 0]
	// row 1: [1 0 0 1 1]
}

func mat64Row(row []float64) []int {
	out := make([]int, len(row))
	for i, v := range row {
		out[i] = int(v)
	}

	return out
}
