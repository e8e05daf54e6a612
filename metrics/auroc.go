// SPDX-License-Identifier: MIT

package metrics

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// rocAUC computes the area under the ROC curve from raw decision values.
// This is the one metric that must not binarize its input: the ranking of
// the continuous scores is the whole signal.
func rocAUC(yTrue, yScore []float64) (float64, error) {
	var pos, neg int
	for _, y := range yTrue {
		if y > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0, ErrSingleClass
	}

	// stat.ROC wants scores sorted ascending with classes aligned.
	order := make([]int, len(yScore))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return yScore[order[a]] < yScore[order[b]] })

	sorted := make([]float64, len(yScore))
	classes := make([]bool, len(yTrue))
	for rank, i := range order {
		sorted[rank] = yScore[i]
		classes[rank] = yTrue[i] > 0
	}

	tpr, fpr, _ := stat.ROC(nil, sorted, classes, nil)

	return integrate.Trapezoidal(fpr, tpr), nil
}
