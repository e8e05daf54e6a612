// SPDX-License-Identifier: MIT

package metrics_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/svmlab/metrics"
)

func benchData(n int) (yTrue, yScore []float64) {
	rng := rand.New(rand.NewSource(1))
	yTrue = make([]float64, n)
	yScore = make([]float64, n)
	for i := 0; i < n; i++ {
		yTrue[i] = 1
		if rng.Intn(2) == 0 {
			yTrue[i] = -1
		}
		yScore[i] = rng.NormFloat64() + yTrue[i]
	}

	return yTrue, yScore
}

func BenchmarkScore_Accuracy(b *testing.B) {
	yTrue, yScore := benchData(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := metrics.Score(yTrue, yScore, metrics.Accuracy); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScore_AUROC(b *testing.B) {
	yTrue, yScore := benchData(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := metrics.Score(yTrue, yScore, metrics.AUROC); err != nil {
			b.Fatal(err)
		}
	}
}
